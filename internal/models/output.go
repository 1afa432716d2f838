package models

import (
	"fmt"
	"strconv"
)

// Output is a single entry of a GET_OUTPUTS reply
type Output struct {
	Name             string `json:"name"`
	Make             string `json:"make,omitempty"`
	Model            string `json:"model,omitempty"`
	Active           bool   `json:"active"`
	Focused          bool   `json:"focused"`
	Rect             Rect   `json:"rect"`
	CurrentWorkspace string `json:"current_workspace"`
}

// CurrentWorkspaceNum parses the number of the workspace shown on the output.
// Like the compositor's "workspace number" command it reads the leading
// digits of the name, so "3:web" yields 3.
func (o *Output) CurrentWorkspaceNum() (int64, error) {
	name := o.CurrentWorkspace
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("output %s: current workspace %q has no number", o.Name, name)
	}

	num, err := strconv.ParseInt(name[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("output %s: invalid workspace number %q: %w", o.Name, name, err)
	}
	return num, nil
}

// GetResolutionString returns the output size as WxH
func (o *Output) GetResolutionString() string {
	return fmt.Sprintf("%dx%d", o.Rect.Width, o.Rect.Height)
}

// GetPositionString returns the output origin as (x, y)
func (o *Output) GetPositionString() string {
	return fmt.Sprintf("(%d, %d)", o.Rect.X, o.Rect.Y)
}

// ActiveOutputs returns only the outputs that are enabled
func ActiveOutputs(outputs []Output) []Output {
	active := make([]Output, 0, len(outputs))
	for _, o := range outputs {
		if o.Active {
			active = append(active, o)
		}
	}
	return active
}
