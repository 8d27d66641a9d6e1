package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/opencode-ai/folio/internal/logging"
	"github.com/opencode-ai/folio/internal/themed"
	"github.com/opencode-ai/folio/internal/web"
)

var (
	serveHTTPAddr string
	serveGRPCAddr string
	serveNoGRPC   bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHTTPAddr, "http-addr", "", "HTTP listen address (default: server.http_addr)")
	serveCmd.Flags().StringVar(&serveGRPCAddr, "grpc-addr", "", "gRPC listen address (default: server.grpc_addr)")
	serveCmd.Flags().BoolVar(&serveNoGRPC, "no-grpc", false, "do not start the theme gRPC service")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site, theme API and generated images",
	Long:  "Serve the About page, theme JSON/CSS, social images and metrics over HTTP, plus the theme gRPC service.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func runServe(ctx context.Context) error {
	cfg := *GetConfig()
	if serveHTTPAddr != "" {
		cfg.Server.HTTPAddr = serveHTTPAddr
	}
	if serveGRPCAddr != "" {
		cfg.Server.GRPCAddr = serveGRPCAddr
	}
	registry := GetRegistry()

	provider, closeSettings := settingsProvider(ctx)
	defer closeSettings()

	httpServer, err := web.NewServer(&cfg, registry, logging.Component("web"),
		web.WithVersion(buildVersion),
		web.WithSettings(provider),
	)
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	var daemon *themed.Daemon
	if !serveNoGRPC {
		daemon, err = themed.New(&cfg, registry, logging.Component("themed"), themed.Options{Version: buildVersion})
		if err != nil {
			return fmt.Errorf("failed to create theme daemon: %w", err)
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return httpServer.Run(ctx)
	})
	if daemon != nil {
		group.Go(func() error {
			return daemon.Run(ctx)
		})
	}

	return group.Wait()
}
