package models

import (
	"fmt"
	"strconv"
)

// Rect is a pixel rectangle as reported by the compositor
type Rect struct {
	X      int64 `json:"x"`
	Y      int64 `json:"y"`
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// String returns the rect formatted as WxH+X+Y
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Workspace is a single entry of a GET_WORKSPACES reply
type Workspace struct {
	Num     int64  `json:"num"`
	Name    string `json:"name"`
	Output  string `json:"output"`
	Visible bool   `json:"visible"`
	Focused bool   `json:"focused"`
	Urgent  bool   `json:"urgent"`
	Rect    Rect   `json:"rect"`
}

// GetNumString returns the workspace number, or "-" for named-only workspaces
func (w *Workspace) GetNumString() string {
	if w.Num < 0 {
		return "-"
	}
	return strconv.FormatInt(w.Num, 10)
}
