package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recera/codebuilder/cmd/codebuilder/internal/ui"
	"github.com/recera/codebuilder/internal/editor"
)

func newEditCommand(a *app) *cobra.Command {
	var lang string
	var outDir string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the snippet editor in the terminal",
		Long: `Opens the editor with the sample for the chosen language.
Switch languages with ctrl+t and shift+tab, export with ctrl+s.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := stateFor(lang, a.config.Export.DefaultLanguage)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = a.config.Export.Dir
			}

			p := tea.NewProgram(ui.New(state, outDir), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("editor failed: %w", err)
			}
			if m, ok := final.(ui.Model); ok {
				stats := m.State().Stats()
				a.logger.Debug("editor closed",
					zap.Stringer("language", m.State().Language()),
					zap.Int("lines", stats.Lines),
					zap.Int("chars", stats.Chars))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Initial language: javascript, python or typescript")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory exported files are written to")

	return cmd
}

// stateFor returns a fresh editor state on the language named by key,
// or on fallback when key is empty.
func stateFor(key string, fallback editor.Language) (*editor.State, error) {
	lang := fallback
	if key != "" {
		parsed, err := editor.ParseLanguage(key)
		if err != nil {
			return nil, err
		}
		lang = parsed
	}

	state := editor.New()
	if err := state.SelectLanguage(lang); err != nil {
		return nil, err
	}
	return state, nil
}
