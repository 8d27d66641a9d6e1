package themed

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/opencode-ai/folio/internal/theme"
)

// Client calls a remote ThemeService.
type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to target without transport security. Extra dial options
// are appended.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", target, err)
	}
	return &Client{conn: conn}, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Resolve fetches the configuration for mode. An InvalidArgument reply is
// returned as *theme.InvalidModeError. Numeric style values arrive as float64.
func (c *Client) Resolve(ctx context.Context, mode string) (theme.ModeConfiguration, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, ResolveMethod, wrapperspb.String(mode), out); err != nil {
		if status.Code(err) == codes.InvalidArgument {
			return theme.ModeConfiguration{}, &theme.InvalidModeError{Mode: mode}
		}
		return theme.ModeConfiguration{}, err
	}
	return structToConfig(out)
}

// ListModes returns the server's supported modes.
func (c *Client) ListModes(ctx context.Context) ([]theme.Mode, error) {
	out := new(structpb.ListValue)
	if err := c.conn.Invoke(ctx, ListModesMethod, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	modes := make([]theme.Mode, 0, len(out.GetValues()))
	for _, value := range out.GetValues() {
		modes = append(modes, theme.Mode(value.GetStringValue()))
	}
	return modes, nil
}

// Status returns the server's status fields.
func (c *Client) Status(ctx context.Context) (map[string]any, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, StatusMethod, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}
