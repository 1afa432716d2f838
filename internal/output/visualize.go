package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/yourusername/swaynav/internal/models"
	"golang.org/x/sys/unix"
)

// VisualizationOptions controls the appearance of the output map
type VisualizationOptions struct {
	UseUnicode bool
	MaxWidth   int
	MaxHeight  int
}

// DefaultVisualizationOptions sizes the map to the terminal
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		MaxWidth:   width,
		MaxHeight:  max(height-2, 1),
	}
}

// VisualizeOutputs draws outputs at their relative positions. Each box is
// labeled with its navigation index, name and current workspace. outputs
// must be in navigation order.
func VisualizeOutputs(outputs []models.Output, opts VisualizationOptions) string {
	if len(outputs) == 0 {
		return "No active outputs\n"
	}

	if opts.MaxWidth < 1 || opts.MaxHeight < 1 {
		return "Terminal too small to draw outputs\n"
	}

	sc := NewScalingContext(outputs, opts.MaxWidth, opts.MaxHeight)
	canvas := NewCanvas(opts.MaxWidth, opts.MaxHeight)

	style := ASCIIStyle
	if opts.UseUnicode {
		style = UnicodeStyle
	}

	for i, o := range outputs {
		x, y, w, h := sc.RectToTerminal(o.Rect)
		if w < 3 || h < 2 {
			continue
		}

		boxStyle := style
		if o.Focused && opts.UseUnicode {
			boxStyle = FocusedStyle
		}
		canvas.DrawBox(x, y, w, h, boxStyle)

		labels := []string{
			fmt.Sprintf("[%d] %s", i, o.Name),
			"ws " + workspaceLabel(o),
		}
		if o.Focused {
			labels = append(labels, "(focused)")
		}

		inner := h - 2
		top := y + 1 + max(inner-len(labels), 0)/2
		for j, label := range labels {
			if j >= inner {
				break
			}
			canvas.DrawTextCentered(x+1, top+j, w-2, label)
		}
	}

	return strings.TrimRight(canvas.String(), "\n") + "\n"
}

func workspaceLabel(o models.Output) string {
	if o.CurrentWorkspace == "" {
		return "-"
	}
	return o.CurrentWorkspace
}

// getTerminalSize returns the current terminal dimensions
func getTerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		// Default to 80x24 if we can't detect
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")

	return strings.Contains(lang, "UTF-8") || strings.Contains(lcAll, "UTF-8")
}

// PrintVisualization writes the output map, colored unless color is disabled
func PrintVisualization(w io.Writer, outputs []models.Output, opts VisualizationOptions) {
	result := VisualizeOutputs(outputs, opts)

	if color.NoColor {
		fmt.Fprint(w, result)
		return
	}
	color.New(color.FgCyan).Fprint(w, result)
}
