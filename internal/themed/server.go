package themed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/opencode-ai/folio/internal/theme"
)

// Server implements ThemeServiceServer on top of a theme registry.
type Server struct {
	registry  *theme.Registry
	logger    zerolog.Logger
	startedAt time.Time
	hostname  string
	version   string

	rateLimiter *RateLimiter
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithVersion sets the reported version.
func WithVersion(version string) ServerOption {
	return func(s *Server) {
		s.version = version
	}
}

// WithRateLimiter reports the limiter's bucket usage in Status.
func WithRateLimiter(rl *RateLimiter) ServerOption {
	return func(s *Server) {
		s.rateLimiter = rl
	}
}

// NewServer creates the gRPC service implementation.
func NewServer(registry *theme.Registry, logger zerolog.Logger, opts ...ServerOption) *Server {
	hostname, _ := os.Hostname()

	s := &Server{
		registry:  registry,
		logger:    logger,
		startedAt: time.Now(),
		hostname:  hostname,
		version:   "dev",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Resolve returns the mode configuration as a Struct. An unknown mode is
// reported as InvalidArgument.
func (s *Server) Resolve(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	cfg, err := s.registry.ResolveString(req.GetValue())
	if err != nil {
		if errors.Is(err, theme.ErrInvalidMode) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "resolve theme: %v", err)
	}

	out, err := configToStruct(cfg)
	if err != nil {
		s.logger.Error().Err(err).Str("mode", cfg.Mode.String()).Msg("failed to encode theme")
		return nil, status.Errorf(codes.Internal, "encode theme: %v", err)
	}

	s.logger.Debug().Str("mode", cfg.Mode.String()).Msg("resolved theme")
	return out, nil
}

// ListModes returns the supported modes in stable order.
func (s *Server) ListModes(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	modes := theme.Modes()
	values := make([]*structpb.Value, 0, len(modes))
	for _, mode := range modes {
		values = append(values, structpb.NewStringValue(mode.String()))
	}
	return &structpb.ListValue{Values: values}, nil
}

// Status reports the server version, hostname and uptime, plus the rate
// limiter's bucket usage when one is attached.
func (s *Server) Status(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	fields := map[string]any{
		"version":  s.version,
		"hostname": s.hostname,
		"uptime":   time.Since(s.startedAt).Round(time.Second).String(),
	}
	if s.rateLimiter != nil {
		fields["rate_limits"] = rateLimitFields(s.rateLimiter)
	}

	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode status: %v", err)
	}
	return out, nil
}

func rateLimitFields(rl *RateLimiter) map[string]any {
	methods := make([]any, 0, len(DefaultRateLimits))
	for _, ms := range rl.Stats() {
		methods = append(methods, methodStatsFields(ms))
	}
	out := map[string]any{
		"enabled": rl.IsEnabled(),
		"methods": methods,
	}
	if global := rl.GlobalStats(); global != nil {
		out["global"] = methodStatsFields(*global)
	}
	return out
}

func methodStatsFields(ms MethodStats) map[string]any {
	return map[string]any{
		"method":            ms.Method,
		"available":         ms.Available,
		"requests_per_sec":  ms.RequestsPerSec,
		"burst_size":        ms.BurstSize,
		"total_requests":    ms.TotalRequests,
		"denied_requests":   ms.DeniedRequests,
		"denied_percentage": ms.DeniedPercentage,
	}
}

func configToStruct(cfg theme.ModeConfiguration) (*structpb.Struct, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return structpb.NewStruct(fields)
}

// structToConfig decodes a Resolve reply. Struct numbers are all float64;
// the theme decoders turn integral component values back into int and nested
// objects into StyleRecord, so the result equals a local Resolve.
func structToConfig(in *structpb.Struct) (theme.ModeConfiguration, error) {
	data, err := json.Marshal(in.AsMap())
	if err != nil {
		return theme.ModeConfiguration{}, fmt.Errorf("failed to encode struct: %w", err)
	}
	var cfg theme.ModeConfiguration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return theme.ModeConfiguration{}, fmt.Errorf("failed to decode theme: %w", err)
	}
	return cfg, nil
}
