package styling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSheet_OrderAndDedup(t *testing.T) {
	s := NewSheet()
	s.Add("theme", ":root { --bg: #fff; }")
	s.Add("button", ".btn { cursor: pointer; }")
	s.Add("theme", ":root { --bg: #000; }")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, ":root { --bg: #fff; }\n.btn { cursor: pointer; }\n", s.String())
}

func TestSheet_IgnoresBlank(t *testing.T) {
	s := NewSheet()
	s.Add("", ".a {}")
	s.Add("empty", "   ")
	s.Add("comment", "/* nothing */")

	assert.Zero(t, s.Len())
	assert.Empty(t, s.String())
}

func TestRemoveComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"none", ".a { color: red; }", ".a { color: red; }"},
		{"inline", ".a { /* x */color: red; }", ".a { color: red; }"},
		{"multiple", "/* a */.a{}/* b */.b{}", ".a{}.b{}"},
		{"unterminated", ".a{} /* open", ".a{} "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, removeComments(tt.in))
		})
	}
}
