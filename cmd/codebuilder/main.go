package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recera/codebuilder/cmd/codebuilder/internal/config"
	"github.com/recera/codebuilder/internal/logging"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// app carries what every subcommand needs once the root has run
type app struct {
	projectDir string
	debug      bool
	config     *config.Config
	logger     *zap.Logger
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "codebuilder",
		Short: "CodeBuilder - write code visually",
		Long: `CodeBuilder renders the CodeBuilder landing page and its code snippet
editor. Build the static page, preview it with live reload, or edit and
export the JavaScript, Python and TypeScript samples from the terminal.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.projectDir, "project", "C", ".", "Project directory containing "+config.FileName)
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newBuildCommand(a))
	rootCmd.AddCommand(newDevCommand(a))
	rootCmd.AddCommand(newEditCommand(a))
	rootCmd.AddCommand(newExportCommand(a))
	rootCmd.AddCommand(newSamplesCommand(a))

	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.projectDir)
	if err != nil {
		return err
	}
	a.config = cfg

	// Paths in codebuilder.json are relative to the project directory
	cfg.ContentPath = a.resolve(cfg.ContentPath)
	cfg.Build.OutDir = a.resolve(cfg.Build.OutDir)
	cfg.Export.Dir = a.resolve(cfg.Export.Dir)

	logger, err := logging.New(a.debug || cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.projectDir, path)
}

// contentPath resolves the content file: the flag wins over the config
func (a *app) contentPath(flag string) string {
	if flag != "" {
		return flag
	}
	return a.config.ContentPath
}
