package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recera/codebuilder/internal/editor"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNew_ShowsStateBuffer(t *testing.T) {
	state := editor.New()
	m := New(state, t.TempDir())

	assert.Equal(t, editor.Sample(editor.JavaScript), m.textarea.Value())
	assert.Same(t, state, m.State())
}

func TestTyping_EditsState(t *testing.T) {
	state := editor.New()
	m := New(state, t.TempDir())

	m = typeText(t, m, "//x")

	assert.Equal(t, editor.Sample(editor.JavaScript)+"//x", state.Buffer())
	assert.Equal(t, editor.JavaScript, state.Language())
}

func TestNavigation_KeepsUnnormalizedBuffer(t *testing.T) {
	state := editor.New()
	state.Edit("a\tb\r\nc")
	m := New(state, t.TempDir())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, "a\tb\r\nc", state.Buffer())
	assert.Equal(t, editor.CharCount("a\tb\r\nc"), state.Stats().Chars)
}

func TestLanguageKeys_ResetBuffer(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want editor.Language
	}{
		{"next", tea.KeyMsg{Type: tea.KeyCtrlT}, editor.Python},
		{"previous", tea.KeyMsg{Type: tea.KeyShiftTab}, editor.TypeScript},
		{"alt+3", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true}, editor.TypeScript},
		{"alt+2", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true}, editor.Python},
		{"alt+1", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true}, editor.JavaScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := editor.New()
			m := New(state, t.TempDir())
			m = typeText(t, m, "edit")

			m, _ = update(t, m, tt.msg)

			assert.Equal(t, tt.want, state.Language())
			assert.Equal(t, editor.Sample(tt.want), state.Buffer())
			assert.Equal(t, editor.Sample(tt.want), m.textarea.Value())
		})
	}
}

func TestExport_WritesFile(t *testing.T) {
	dir := t.TempDir()
	state := editor.New()
	require.NoError(t, state.SelectLanguage(editor.Python))
	m := New(state, dir)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msg := cmd()
	exported, ok := msg.(exportedMsg)
	require.True(t, ok)
	require.NoError(t, exported.err)
	assert.Equal(t, filepath.Join(dir, "code.py"), exported.path)

	data, err := os.ReadFile(exported.path)
	require.NoError(t, err)
	assert.Equal(t, editor.Sample(editor.Python), string(data))

	m, _ = update(t, m, msg)
	assert.Contains(t, m.View(), "Exported to")
}

func TestExport_CapturesBufferAtKeyPress(t *testing.T) {
	dir := t.TempDir()
	state := editor.New()
	state.Edit("x")
	m := New(state, dir)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	state.Edit("changed later")

	exported := cmd().(exportedMsg)
	require.NoError(t, exported.err)
	data, err := os.ReadFile(exported.path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestExport_ErrorShown(t *testing.T) {
	m := New(editor.New(), t.TempDir())

	m, _ = update(t, m, exportedMsg{err: os.ErrPermission})
	assert.Contains(t, m.View(), "Export failed")
}

func TestView_StatusLine(t *testing.T) {
	state := editor.New()
	m := New(state, t.TempDir())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Lines: 6")
	assert.Contains(t, view, "code.js")
	assert.Contains(t, view, "TypeScript")
}

func TestQuit(t *testing.T) {
	m := New(editor.New(), t.TempDir())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestHelpToggle(t *testing.T) {
	m := New(editor.New(), t.TempDir())
	assert.False(t, m.help.ShowAll)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.True(t, m.help.ShowAll)
}
