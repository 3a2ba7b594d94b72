// Package editor holds the state of the code snippet editor: the three
// canned samples, the selected language and the editable buffer.
package editor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLanguage is returned when a key outside the supported set is used.
var ErrUnknownLanguage = errors.New("unknown language")

// Language identifies one of the supported sample languages
type Language uint8

const (
	// JavaScript is the default language
	JavaScript Language = iota
	// Python sample
	Python
	// TypeScript sample
	TypeScript

	numLanguages
)

type languageInfo struct {
	key   string
	label string
	icon  string
	ext   string
}

var languageTable = [numLanguages]languageInfo{
	JavaScript: {key: "javascript", label: "JavaScript", icon: "FileCode", ext: "js"},
	Python:     {key: "python", label: "Python", icon: "Code", ext: "py"},
	TypeScript: {key: "typescript", label: "TypeScript", icon: "FileType", ext: "ts"},
}

// Languages returns the supported languages in tab order.
func Languages() []Language {
	return []Language{JavaScript, Python, TypeScript}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l < numLanguages
}

// String returns the language key, e.g. "python".
func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", uint8(l))
	}
	return languageTable[l].key
}

// Label returns the human readable tab label.
func (l Language) Label() string {
	if !l.Valid() {
		return l.String()
	}
	return languageTable[l].label
}

// Icon returns the icon name shown next to the tab label.
func (l Language) Icon() string {
	if !l.Valid() {
		return ""
	}
	return languageTable[l].icon
}

// Extension returns the file extension used on export. Anything that is not
// Python or TypeScript exports as JavaScript.
func (l Language) Extension() string {
	switch l {
	case Python:
		return languageTable[Python].ext
	case TypeScript:
		return languageTable[TypeScript].ext
	default:
		return languageTable[JavaScript].ext
	}
}

// Next returns the language after l in tab order, wrapping around.
func (l Language) Next() Language {
	if !l.Valid() {
		return JavaScript
	}
	return (l + 1) % numLanguages
}

// Prev returns the language before l in tab order, wrapping around.
func (l Language) Prev() Language {
	if !l.Valid() {
		return JavaScript
	}
	return (l + numLanguages - 1) % numLanguages
}

// ParseLanguage maps a key such as "python" to its Language.
func ParseLanguage(key string) (Language, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, info := range languageTable {
		if info.key == key {
			return Language(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, key)
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLanguage, uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
