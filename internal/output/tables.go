package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/yourusername/swaynav/internal/models"
)

// PrintWorkspacesTable prints workspaces sorted by number
func PrintWorkspacesTable(w io.Writer, workspaces []models.Workspace) {
	table := tablewriter.NewWriter(w)
	table.Header("Num", "Name", "Output", "Visible", "Focused", "Urgent")

	sorted := make([]models.Workspace, len(workspaces))
	copy(sorted, workspaces)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Num < sorted[j].Num
	})

	for _, ws := range sorted {
		table.Append(
			ws.GetNumString(),
			truncate(ws.Name, 20),
			ws.Output,
			mark(ws.Visible),
			mark(ws.Focused),
			mark(ws.Urgent),
		)
	}

	table.Render()
}

// PrintOutputsTable prints outputs in the order given, with their index.
// Pass outputs already in navigation order.
func PrintOutputsTable(w io.Writer, outputs []models.Output) {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Name", "Position", "Resolution", "Workspace", "Focused")

	for i, o := range outputs {
		current := o.CurrentWorkspace
		if current == "" {
			current = "-"
		}

		table.Append(
			fmt.Sprintf("%d", i),
			truncate(o.Name, 20),
			o.GetPositionString(),
			o.GetResolutionString(),
			current,
			mark(o.Focused),
		)
	}

	table.Render()
}

// Helper functions

func mark(b bool) string {
	if b {
		return "*"
	}
	return ""
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
