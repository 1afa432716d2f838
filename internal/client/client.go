package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	sway "github.com/joshuarubin/go-sway"
	"github.com/yourusername/swaynav/internal/logging"
	"github.com/yourusername/swaynav/internal/models"
)

// DefaultTimeout of zero means requests block until the compositor answers
const DefaultTimeout time.Duration = 0

// Client talks to sway or i3 over its IPC socket
type Client struct {
	socketPath string
	timeout    time.Duration

	conn   sway.Client
	cancel context.CancelFunc
}

// NewClient creates a new client. The connection is opened on first use.
func NewClient(socketPath string, timeout time.Duration) *Client {
	return &Client{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

// Connect establishes connection to the compositor
func (c *Client) Connect() error {
	if c.conn != nil {
		return nil
	}

	// The library closes the socket when this context ends
	ctx, cancel := context.WithCancel(context.Background())
	conn, err := sway.New(ctx, sway.WithSocketPath(c.socketPath))
	if err != nil {
		cancel()
		return fmt.Errorf("failed to connect to %s: %w", c.socketPath, err)
	}

	c.conn = conn
	c.cancel = cancel
	return nil
}

// Close closes the connection
func (c *Client) Close() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.conn = nil
	c.cancel = nil
	return nil
}

// request runs one IPC call, honoring ctx and the client timeout. A call
// abandoned on cancellation drops the connection so later replies cannot
// be read out of order.
func request[T any](ctx context.Context, c *Client, name string, call func(context.Context, sway.Client) (T, error)) (T, error) {
	var zero T

	if err := c.Connect(); err != nil {
		return zero, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	conn := c.conn
	start := time.Now()

	go func() {
		v, err := call(ctx, conn)
		done <- result{v, err}
	}()

	select {
	case r := <-done:
		logging.Debug().
			Str("request", name).
			Dur("elapsed", time.Since(start)).
			AnErr("error", r.err).
			Msg("ipc reply")
		return r.value, r.err
	case <-ctx.Done():
		c.Close()
		return zero, ctx.Err()
	}
}

// GetWorkspaces returns a snapshot of all workspaces across all outputs
func (c *Client) GetWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	reply, err := request(ctx, c, "get_workspaces", func(ctx context.Context, conn sway.Client) ([]sway.Workspace, error) {
		return conn.GetWorkspaces(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("get_workspaces: %w", err)
	}

	workspaces := make([]models.Workspace, 0, len(reply))
	for _, w := range reply {
		workspaces = append(workspaces, toWorkspace(w))
	}
	return workspaces, nil
}

// GetOutputs returns a snapshot of all outputs, including inactive ones.
// The output holding the focused workspace is marked focused.
func (c *Client) GetOutputs(ctx context.Context) ([]models.Output, error) {
	reply, err := request(ctx, c, "get_outputs", func(ctx context.Context, conn sway.Client) ([]sway.Output, error) {
		return conn.GetOutputs(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("get_outputs: %w", err)
	}

	workspaces, err := c.GetWorkspaces(ctx)
	if err != nil {
		return nil, err
	}
	focusedOutput := ""
	for _, w := range workspaces {
		if w.Focused {
			focusedOutput = w.Output
			break
		}
	}

	outputs := make([]models.Output, 0, len(reply))
	for _, o := range reply {
		out := toOutput(o)
		out.Focused = focusedOutput != "" && out.Name == focusedOutput
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// GetVersion returns the compositor version
func (c *Client) GetVersion(ctx context.Context) (*models.Version, error) {
	reply, err := request(ctx, c, "get_version", func(ctx context.Context, conn sway.Client) (*sway.Version, error) {
		return conn.GetVersion(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("get_version: %w", err)
	}

	return &models.Version{
		Major:                int(reply.Major),
		Minor:                int(reply.Minor),
		Patch:                int(reply.Patch),
		HumanReadable:        reply.HumanReadable,
		LoadedConfigFileName: reply.LoadedConfigFileName,
	}, nil
}

// RunCommand executes a command and fails if any part of it was rejected
func (c *Client) RunCommand(ctx context.Context, command string) error {
	replies, err := request(ctx, c, "run_command", func(ctx context.Context, conn sway.Client) ([]sway.RunCommandReply, error) {
		return conn.RunCommand(ctx, command)
	})

	var failures []string
	for _, r := range replies {
		res := models.CommandResult{Success: r.Success, Error: r.Error}
		if res.IsError() {
			failures = append(failures, res.GetError())
		}
	}
	if len(failures) > 0 {
		logging.Warn().Str("command", command).Strs("errors", failures).Msg("command rejected")
		return fmt.Errorf("command %q rejected: %s", command, strings.Join(failures, "; "))
	}
	if err != nil {
		return fmt.Errorf("run_command %q: %w", command, err)
	}

	logging.Debug().Str("command", command).Msg("command ran")
	return nil
}

func toRect(r sway.Rect) models.Rect {
	return models.Rect{
		X:      int64(r.X),
		Y:      int64(r.Y),
		Width:  int64(r.Width),
		Height: int64(r.Height),
	}
}

func toWorkspace(w sway.Workspace) models.Workspace {
	return models.Workspace{
		Num:     int64(w.Num),
		Name:    w.Name,
		Output:  w.Output,
		Visible: w.Visible,
		Focused: w.Focused,
		Urgent:  w.Urgent,
		Rect:    toRect(w.Rect),
	}
}

func toOutput(o sway.Output) models.Output {
	return models.Output{
		Name:             o.Name,
		Make:             o.Make,
		Model:            o.Model,
		Active:           o.Active,
		Rect:             toRect(o.Rect),
		CurrentWorkspace: o.CurrentWorkspace,
	}
}
