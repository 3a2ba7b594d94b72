package editor

import (
	"fmt"
	"unicode/utf16"
)

// State is the editor's selected language and its live buffer.
//
// After SelectLanguage the buffer always equals the language's sample; edits
// made before the switch are dropped. State is not safe for concurrent use,
// it belongs to the single widget that renders it.
type State struct {
	lang   Language
	buffer string
}

// New returns a State showing the JavaScript sample.
func New() *State {
	return &State{
		lang:   JavaScript,
		buffer: samples[JavaScript],
	}
}

// Language returns the selected language.
func (s *State) Language() Language {
	return s.lang
}

// Buffer returns the current text.
func (s *State) Buffer() string {
	return s.buffer
}

// SelectLanguage switches to lang and resets the buffer to its sample.
// Unknown languages leave the state untouched.
func (s *State) SelectLanguage(lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLanguage, uint8(lang))
	}
	s.lang = lang
	s.buffer = samples[lang]
	return nil
}

// Edit replaces the buffer with text.
func (s *State) Edit(text string) {
	s.buffer = text
}

// Stats returns the derived counters for the current buffer.
func (s *State) Stats() Stats {
	return Stats{
		Lines: LineCount(s.buffer),
		Chars: CharCount(s.buffer),
	}
}

// Stats are the counters shown under the editor.
type Stats struct {
	Lines int
	Chars int
}

// LineCount returns the number of newline separated segments in text.
// An empty text is one line.
func LineCount(text string) int {
	n := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			n++
		}
	}
	return n
}

// CharCount returns the length of text in UTF-16 code units, which is what
// the browser reports for the same textarea value.
func CharCount(text string) int {
	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}
