package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsOnJavaScriptSample(t *testing.T) {
	s := New()

	want := "function fibonacci(n) {\n" +
		"  if (n <= 1) return n;\n" +
		"  return fibonacci(n - 1) + fibonacci(n - 2);\n" +
		"}\n" +
		"\n" +
		"console.log(fibonacci(10));"

	assert.Equal(t, JavaScript, s.Language())
	assert.Equal(t, want, s.Buffer())
}

func TestSelectLanguage_ResetsBufferToSample(t *testing.T) {
	for _, lang := range Languages() {
		t.Run(lang.String(), func(t *testing.T) {
			s := New()
			require.NoError(t, s.SelectLanguage(lang))

			assert.Equal(t, lang, s.Language())
			assert.Equal(t, Sample(lang), s.Buffer())
		})
	}
}

func TestSelectLanguage_DiscardsEdits(t *testing.T) {
	tests := []struct {
		name string
		from Language
		to   Language
	}{
		{"same language", Python, Python},
		{"javascript to typescript", JavaScript, TypeScript},
		{"typescript to python", TypeScript, Python},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			require.NoError(t, s.SelectLanguage(tt.from))
			s.Edit("user typed this")

			require.NoError(t, s.SelectLanguage(tt.to))
			assert.Equal(t, Sample(tt.to), s.Buffer())
		})
	}
}

func TestSelectLanguage_UnknownIsNoop(t *testing.T) {
	s := New()
	s.Edit("keep me")

	err := s.SelectLanguage(Language(42))

	assert.ErrorIs(t, err, ErrUnknownLanguage)
	assert.Equal(t, JavaScript, s.Language())
	assert.Equal(t, "keep me", s.Buffer())
}

func TestEdit_KeepsLanguage(t *testing.T) {
	s := New()
	require.NoError(t, s.SelectLanguage(TypeScript))

	s.Edit("")
	assert.Equal(t, TypeScript, s.Language())
	assert.Equal(t, "", s.Buffer())

	s.Edit("let x = 1;\n")
	assert.Equal(t, "let x = 1;\n", s.Buffer())
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"a", 1},
		{"a\nb\nc", 3},
		{"\n", 2},
		{"trailing\n", 2},
		{"a\r\nb", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LineCount(tt.text), "LineCount(%q)", tt.text)
	}
}

func TestCharCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"a\nb", 3},
		{"привет", 6},
		{"🚀", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CharCount(tt.text), "CharCount(%q)", tt.text)
	}
}

func TestStats_FollowBuffer(t *testing.T) {
	s := New()
	assert.Equal(t, Stats{Lines: 6, Chars: len(Sample(JavaScript))}, s.Stats())

	s.Edit("x")
	assert.Equal(t, Stats{Lines: 1, Chars: 1}, s.Stats())
}

func TestSamples_HaveNoTrailingNewline(t *testing.T) {
	for _, lang := range Languages() {
		sample := Sample(lang)
		assert.NotEmpty(t, sample)
		assert.False(t, strings.HasSuffix(sample, "\n"), "%s sample ends with newline", lang)
	}
	assert.Empty(t, Sample(Language(9)))
}

func TestSamples_ReturnsCopy(t *testing.T) {
	m := Samples()
	require.Len(t, m, 3)
	m["python"] = "mutated"

	assert.NotEqual(t, "mutated", Sample(Python))
}
