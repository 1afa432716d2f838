package output

import (
	"github.com/yourusername/swaynav/internal/models"
)

// ScalingContext maps compositor pixel space onto terminal cells
type ScalingContext struct {
	MinX, MinY int64
	ScaleX     float64
	ScaleY     float64
	TermWidth  int
	TermHeight int
}

// NewScalingContext fits the bounding box of outputs into the terminal.
// Terminal cells are roughly twice as tall as wide, so the vertical scale is
// halved to keep the aspect ratio.
func NewScalingContext(outputs []models.Output, termWidth, termHeight int) *ScalingContext {
	sc := &ScalingContext{TermWidth: termWidth, TermHeight: termHeight}
	if len(outputs) == 0 {
		sc.ScaleX, sc.ScaleY = 1, 1
		return sc
	}

	minX, minY := outputs[0].Rect.X, outputs[0].Rect.Y
	maxX, maxY := minX+outputs[0].Rect.Width, minY+outputs[0].Rect.Height
	for _, o := range outputs[1:] {
		minX = min(minX, o.Rect.X)
		minY = min(minY, o.Rect.Y)
		maxX = max(maxX, o.Rect.X+o.Rect.Width)
		maxY = max(maxY, o.Rect.Y+o.Rect.Height)
	}

	pixelWidth := float64(max(maxX-minX, 1))
	pixelHeight := float64(max(maxY-minY, 1))

	scale := min(float64(termWidth-1)/pixelWidth, 2*float64(termHeight-1)/pixelHeight)

	sc.MinX, sc.MinY = minX, minY
	sc.ScaleX = scale
	sc.ScaleY = scale / 2
	return sc
}

// RectToTerminal converts a pixel rect into terminal cell coordinates
func (sc *ScalingContext) RectToTerminal(r models.Rect) (x, y, w, h int) {
	x = int(float64(r.X-sc.MinX) * sc.ScaleX)
	y = int(float64(r.Y-sc.MinY) * sc.ScaleY)
	w = int(float64(r.Width) * sc.ScaleX)
	h = int(float64(r.Height) * sc.ScaleY)

	if x+w > sc.TermWidth {
		w = sc.TermWidth - x
	}
	if y+h > sc.TermHeight {
		h = sc.TermHeight - y
	}
	return x, y, w, h
}
