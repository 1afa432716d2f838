package focus

import (
	"context"
	"fmt"

	"github.com/yourusername/swaynav/internal/logging"
	"github.com/yourusername/swaynav/internal/models"
	"github.com/yourusername/swaynav/internal/types"
)

// Backend is the window-manager connection the navigator drives.
// *client.Client satisfies it.
type Backend interface {
	GetWorkspaces(ctx context.Context) ([]models.Workspace, error)
	GetOutputs(ctx context.Context) ([]models.Output, error)
	RunCommand(ctx context.Context, command string) error
}

// Options controls a single navigation.
type Options struct {
	Mode    types.Mode
	Move    bool // move the focused container to the target first
	NoFocus bool // leave focus where it is
}

// Result describes what a navigation computed and did.
type Result struct {
	Mode    types.Mode `json:"mode"`
	From    int64      `json:"from"`
	Target  int64      `json:"target"`
	Output  string     `json:"output"`
	Moved   bool       `json:"moved"`
	Focused bool       `json:"focused"`
}

// Navigator computes target workspaces and issues the resulting commands.
type Navigator struct {
	backend Backend
}

// NewNavigator creates a navigator over the given backend.
func NewNavigator(b Backend) *Navigator {
	return &Navigator{backend: b}
}

// FocusedWorkspace returns the single focused workspace of a snapshot.
func FocusedWorkspace(workspaces []models.Workspace) (models.Workspace, error) {
	if len(workspaces) == 0 {
		return models.Workspace{}, ErrNoWorkspaces
	}

	var focused *models.Workspace
	for i := range workspaces {
		if !workspaces[i].Focused {
			continue
		}
		if focused != nil {
			return models.Workspace{}, fmt.Errorf("workspaces %d and %d: %w", focused.Num, workspaces[i].Num, ErrMultipleFocused)
		}
		focused = &workspaces[i]
	}

	if focused == nil {
		return models.Workspace{}, ErrNoFocusedWorkspace
	}
	return *focused, nil
}

// Select fetches a snapshot and computes the target workspace for mode
// without sending any command.
func (n *Navigator) Select(ctx context.Context, mode types.Mode) (Result, error) {
	workspaces, err := n.backend.GetWorkspaces(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch workspaces: %w", err)
	}

	current, err := FocusedWorkspace(workspaces)
	if err != nil {
		return Result{}, fmt.Errorf("find focused workspace: %w", err)
	}

	var ordered []models.Output
	if mode.NeedsOutputs() {
		outputs, err := n.backend.GetOutputs(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("fetch outputs: %w", err)
		}
		ordered = SortOutputs(models.ActiveOutputs(outputs))
		if len(ordered) == 0 {
			return Result{}, fmt.Errorf("select %s: %w", mode, ErrNoOutputs)
		}
	}

	res := Result{Mode: mode, From: current.Num, Output: current.Output}
	step := mode.Step()

	switch mode {
	case types.ModeNext, types.ModePrev:
		res.Target, err = FindBy(workspaces, current.Num, step)
	case types.ModeNextOnOutput, types.ModePrevOnOutput:
		res.Target = FindOnOutput(workspaces, current.Num, step, current.Output)
	case types.ModeNextOutput, types.ModePrevOutput:
		res.Target = FindOutput(workspaces, current.Num, step, current.Output)
	case types.ModeNextLayoutAware, types.ModePrevLayoutAware:
		res.Target, err = LayoutAware(workspaces, current.Num, current.Output, step, ordered)
	default:
		return Result{}, fmt.Errorf("unsupported mode %d", int(mode))
	}
	if err != nil {
		return Result{}, fmt.Errorf("select %s: %w", mode, err)
	}

	logging.Debug().
		Str("mode", mode.String()).
		Int64("from", res.From).
		Int64("target", res.Target).
		Str("output", res.Output).
		Int("workspaces", len(workspaces)).
		Msg("target selected")

	return res, nil
}

// Navigate selects the target workspace, then optionally moves the focused
// container there and focuses it.
func (n *Navigator) Navigate(ctx context.Context, opts Options) (Result, error) {
	res, err := n.Select(ctx, opts.Mode)
	if err != nil {
		return Result{}, err
	}

	if opts.Move {
		if err := n.backend.RunCommand(ctx, MoveCommand(res.Target)); err != nil {
			return Result{}, fmt.Errorf("move to workspace %d: %w", res.Target, err)
		}
		res.Moved = true
	}

	if !opts.NoFocus {
		if err := n.backend.RunCommand(ctx, FocusCommand(res.Target)); err != nil {
			return Result{}, fmt.Errorf("focus workspace %d: %w", res.Target, err)
		}
		res.Focused = true
	}

	logging.Info().
		Str("mode", opts.Mode.String()).
		Int64("from", res.From).
		Int64("target", res.Target).
		Bool("moved", res.Moved).
		Bool("focused", res.Focused).
		Msg("navigated")

	return res, nil
}

// FocusCommand returns the command that shows workspace num.
func FocusCommand(num int64) string {
	return fmt.Sprintf("workspace number %d", num)
}

// MoveCommand returns the command that sends the focused container to workspace num.
func MoveCommand(num int64) string {
	return fmt.Sprintf("move workspace number %d", num)
}
