package focus

import "errors"

var (
	ErrNoWorkspaces         = errors.New("no workspaces in snapshot")
	ErrNoFocusedWorkspace   = errors.New("no focused workspace")
	ErrMultipleFocused      = errors.New("more than one focused workspace")
	ErrNoOutputs            = errors.New("no active outputs")
	ErrOutputNotFound       = errors.New("current output not found among outputs")
	ErrWorkspaceNotOnOutput = errors.New("current workspace not found on its output")
	ErrIndexOutOfRange      = errors.New("workspace index out of range")
)
