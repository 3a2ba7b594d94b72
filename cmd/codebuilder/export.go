package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCommand(a *app) *cobra.Command {
	var lang string
	var input string
	var outDir string
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a snippet as code.<ext>",
		Long: `Writes the editor buffer for a language to code.js, code.py or code.ts.
Without --in the language's sample is exported. Use --in - to read stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := stateFor(lang, a.config.Export.DefaultLanguage)
			if err != nil {
				return err
			}

			if input != "" {
				text, err := readInput(cmd.InOrStdin(), input)
				if err != nil {
					return err
				}
				state.Edit(text)
			}

			artifact := state.Export()
			if toStdout {
				_, err := artifact.WriteTo(cmd.OutOrStdout())
				return err
			}

			if outDir == "" {
				outDir = a.config.Export.Dir
			}
			path, err := artifact.WriteFile(outDir)
			if err != nil {
				return err
			}
			stats := state.Stats()
			a.logger.Info("snippet exported",
				zap.String("path", path),
				zap.Int("lines", stats.Lines),
				zap.Int("chars", stats.Chars))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language: javascript, python or typescript")
	cmd.Flags().StringVarP(&input, "in", "i", "", "File whose contents replace the sample (- for stdin)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the code to stdout instead of a file")

	return cmd
}

func readInput(stdin io.Reader, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}
