package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fern-ui/fern/internal/demo"
	"github.com/fern-ui/fern/pkg/web"
)

func serveCmd() *cobra.Command {
	var (
		addr  string
		title string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo application",
		Long: `Start the HTTP server with the demo application.

Each browser connection gets its own live session: the component
tree runs on the server and DOM patches stream over WebSocket.

Examples:
  fern serve
  fern serve --addr=:9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := web.NewServer(demo.App,
				web.WithAddr(addr),
				web.WithTitle(title),
				web.WithLogger(slog.Default()),
			)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8420", "Listen address")
	cmd.Flags().StringVarP(&title, "title", "t", "fern demo", "Page title")

	return cmd
}
