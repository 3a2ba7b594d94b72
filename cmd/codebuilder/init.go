package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recera/codebuilder/cmd/codebuilder/internal/config"
	"github.com/recera/codebuilder/internal/editor"
)

func newInitCommand(a *app) *cobra.Command {
	var lang string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.FileName + " to the project directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(a.projectDir, config.FileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}

			cfg := config.DefaultConfig()
			if lang != "" {
				l, err := editor.ParseLanguage(lang)
				if err != nil {
					return err
				}
				cfg.Export.DefaultLanguage = l
			}

			if err := os.MkdirAll(a.projectDir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", a.projectDir, err)
			}
			if err := config.Save(cfg, a.projectDir); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			a.logger.Info("config written", zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Default editor language")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
