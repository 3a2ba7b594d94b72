package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/recera/codebuilder/internal/devserver"
)

func newDevCommand(a *app) *cobra.Command {
	var port int
	var host string
	var contentFile string

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the preview server",
		Long:  `Serves the landing page and reloads open browsers when the content file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// CLI takes precedence over codebuilder.json
			if port == 0 {
				port = a.config.Dev.Port
			}
			if host == "" {
				host = a.config.Dev.Host
			}

			srv, err := devserver.New(devserver.Options{
				Host:        host,
				Port:        port,
				ContentPath: a.contentPath(contentFile),
				Logger:      a.logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run the preview server on (default from config, 5173)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind the preview server to (default from config, localhost)")
	cmd.Flags().StringVar(&contentFile, "content", "", "YAML file replacing the embedded page content")

	return cmd
}
