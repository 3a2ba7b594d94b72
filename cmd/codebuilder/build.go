package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recera/codebuilder/app/routes"
	"github.com/recera/codebuilder/internal/content"
	"github.com/recera/codebuilder/internal/editor"
	"github.com/recera/codebuilder/pkg/renderer/html"
)

func newBuildCommand(a *app) *cobra.Command {
	var outDir string
	var contentFile string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the landing page to a static index.html",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = a.config.Build.OutDir
			}
			path, err := buildPage(a.contentPath(contentFile), outDir, a.config.Build.Stylesheet)
			if err != nil {
				return err
			}
			a.logger.Info("page built", zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config, \"dist\")")
	cmd.Flags().StringVar(&contentFile, "content", "", "YAML file replacing the embedded page content")

	return cmd
}

// buildPage renders the page with a fresh editor state into outDir/index.html
func buildPage(contentPath, outDir, stylesheet string) (string, error) {
	site, err := content.Load(contentPath)
	if err != nil {
		return "", err
	}

	doc, err := routes.Page(site, editor.New(), routes.DocumentOptions{Stylesheet: stylesheet})
	if err != nil {
		return "", fmt.Errorf("failed to build page: %w", err)
	}

	var buf bytes.Buffer
	if err := html.RenderDocument(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outDir, err)
	}
	path := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
