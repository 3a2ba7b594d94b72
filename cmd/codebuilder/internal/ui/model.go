package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/recera/codebuilder/internal/editor"
)

// Model is the terminal editor. It owns no editor state of its own: every
// change goes through the injected *editor.State.
type Model struct {
	state     *editor.State
	exportDir string

	textarea textarea.Model
	help     help.Model
	keys     KeyMap

	width  int
	height int

	statusMessage string
	errorMessage  string
	quitting      bool
}

// exportedMsg reports the result of writing an artifact
type exportedMsg struct {
	path string
	err  error
}

// New creates the editor model for state; exports are written to exportDir
func New(state *editor.State, exportDir string) Model {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	ta.SetValue(state.Buffer())
	ta.Focus()

	return Model{
		state:     state,
		exportDir: exportDir,
		textarea:  ta,
		help:      help.New(),
		keys:      DefaultKeyMap,
	}
}

// State returns the editor state the model drives
func (m Model) State() *editor.State {
	return m.state
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.errorMessage = "Export failed: " + msg.err.Error()
			m.statusMessage = ""
		} else {
			m.statusMessage = "Exported to " + msg.path
			m.errorMessage = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil

		case key.Matches(msg, m.keys.NextLanguage):
			return m.selectLanguage(m.state.Language().Next()), nil

		case key.Matches(msg, m.keys.PrevLanguage):
			return m.selectLanguage(m.state.Language().Prev()), nil

		case key.Matches(msg, m.keys.Export):
			return m, exportCmd(m.state.Export(), m.exportDir)
		}

		for _, d := range m.keys.direct() {
			if key.Matches(msg, d.binding) {
				return m.selectLanguage(d.lang), nil
			}
		}
	}

	// The text area normalizes tabs and carriage returns, so only a message
	// that changed its value is written back to the state.
	before := m.textarea.Value()
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if v := m.textarea.Value(); v != before {
		m.state.Edit(v)
		m.statusMessage = ""
	}
	return m, cmd
}

// selectLanguage switches the state and reloads the text area from it
func (m Model) selectLanguage(lang editor.Language) Model {
	if err := m.state.SelectLanguage(lang); err != nil {
		m.errorMessage = err.Error()
		return m
	}
	m.textarea.SetValue(m.state.Buffer())
	m.statusMessage = ""
	m.errorMessage = ""
	return m
}

// exportCmd writes the artifact captured at key press time
func exportCmd(a editor.Artifact, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := a.WriteFile(dir)
		return exportedMsg{path: path, err: err}
	}
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.textarea.SetWidth(m.width - 4)

	// tabs, borders, status line, message and help
	chrome := 8
	if m.help.ShowAll {
		chrome += 3
	}
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	m.textarea.SetHeight(h)
}
