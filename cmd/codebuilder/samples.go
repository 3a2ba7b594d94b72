package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"

	"github.com/recera/codebuilder/internal/editor"
)

func newSamplesCommand(a *app) *cobra.Command {
	var lang string
	var color bool

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Print the built-in code samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			langs := editor.Languages()
			if lang != "" {
				l, err := editor.ParseLanguage(lang)
				if err != nil {
					return err
				}
				langs = []editor.Language{l}
			}

			out := cmd.OutOrStdout()
			for i, l := range langs {
				if i > 0 {
					fmt.Fprintln(out)
				}
				sample := editor.Sample(l)
				fmt.Fprintf(out, "# %s (%s) lines=%d chars=%d\n",
					l.Label(), editor.Filename(l), editor.LineCount(sample), editor.CharCount(sample))
				if err := printSample(out, l, sample, color); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Only print this language's sample")
	cmd.Flags().BoolVar(&color, "color", false, "Syntax highlight the samples for a 256 color terminal")

	return cmd
}

func printSample(w io.Writer, l editor.Language, sample string, color bool) error {
	if !color {
		_, err := fmt.Fprintln(w, sample)
		return err
	}
	if err := quick.Highlight(w, sample, l.String(), "terminal256", "monokai"); err != nil {
		return fmt.Errorf("failed to highlight %s sample: %w", l, err)
	}
	_, err := fmt.Fprintln(w)
	return err
}
