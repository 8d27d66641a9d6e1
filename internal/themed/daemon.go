package themed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/opencode-ai/folio/internal/config"
	"github.com/opencode-ai/folio/internal/theme"
)

// Options configure the daemon runtime.
type Options struct {
	// Addr overrides server.grpc_addr.
	Addr    string
	Version string
}

// Daemon runs the theme gRPC service until its context is canceled.
type Daemon struct {
	cfg    *config.Config
	logger zerolog.Logger
	opts   Options

	server      *Server
	rateLimiter *RateLimiter
	grpcServer  *grpc.Server
}

// New constructs a daemon serving registry.
func New(cfg *config.Config, registry *theme.Registry, logger zerolog.Logger, opts Options) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if registry == nil {
		return nil, errors.New("theme registry is required")
	}
	if opts.Addr == "" {
		opts.Addr = cfg.Server.GRPCAddr
	}
	if _, _, err := net.SplitHostPort(opts.Addr); err != nil {
		return nil, fmt.Errorf("invalid gRPC address %q: %w", opts.Addr, err)
	}

	limits := cfg.Server.RateLimit
	rateLimiter := NewRateLimiter(
		WithEnabled(limits.Enabled),
		WithGlobalLimit(RateLimitConfig{
			RequestsPerSecond: limits.RequestsPerSecond,
			BurstSize:         limits.BurstSize,
		}),
	)

	server := NewServer(registry, logger, WithVersion(opts.Version), WithRateLimiter(rateLimiter))

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		rateLimiter.UnaryServerInterceptor(),
		loggingInterceptor(logger),
	))
	RegisterThemeServiceServer(grpcServer, server)

	return &Daemon{
		cfg:         cfg,
		logger:      logger,
		opts:        opts,
		server:      server,
		rateLimiter: rateLimiter,
		grpcServer:  grpcServer,
	}, nil
}

// Run listens on the configured address and serves until ctx is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	listener, err := net.Listen("tcp", d.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", d.opts.Addr, err)
	}
	return d.Serve(ctx, listener)
}

// Serve serves on listener until ctx is canceled, then stops gracefully.
func (d *Daemon) Serve(ctx context.Context, listener net.Listener) error {
	d.logger.Info().
		Str("bind", listener.Addr().String()).
		Str("version", d.opts.Version).
		Msg("theme gRPC server starting")

	errCh := make(chan error, 1)
	go func() {
		if err := d.grpcServer.Serve(listener); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		d.logger.Info().Msg("theme gRPC server shutting down...")
		d.grpcServer.GracefulStop()
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("gRPC server error: %w", err)
		}
	}

	d.logger.Info().Msg("theme gRPC server shutdown complete")
	return nil
}

// Addr returns the configured listen address.
func (d *Daemon) Addr() string {
	return d.opts.Addr
}

// Server returns the underlying service implementation.
func (d *Daemon) Server() *Server {
	return d.server
}

// RateLimiter returns the limiter installed on the server.
func (d *Daemon) RateLimiter() *RateLimiter {
	return d.rateLimiter
}

func loggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		event := logger.Debug()
		if err != nil {
			event = logger.Warn().Str("code", status.Code(err).String())
		}
		event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Msg("rpc")
		return resp, err
	}
}
