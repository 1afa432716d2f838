package focus

import (
	"sort"

	"github.com/yourusername/swaynav/internal/models"
)

// CompareOutputs orders outputs left to right, then top to bottom.
// Returns -1, 0 or 1. Outputs with the same origin compare equal.
func CompareOutputs(a, b models.Output) int {
	switch {
	case a.Rect.X < b.Rect.X:
		return -1
	case a.Rect.X > b.Rect.X:
		return 1
	case a.Rect.Y < b.Rect.Y:
		return -1
	case a.Rect.Y > b.Rect.Y:
		return 1
	default:
		return 0
	}
}

// SortOutputs returns a copy of outputs in navigation order.
// The sort is stable, so outputs sharing an origin keep their input order.
func SortOutputs(outputs []models.Output) []models.Output {
	sorted := make([]models.Output, len(outputs))
	copy(sorted, outputs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareOutputs(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// OutputIndex locates the current output in an ordered list.
// It matches by name first and falls back to the output flagged as focused.
func OutputIndex(ordered []models.Output, name string) (int, error) {
	if len(ordered) == 0 {
		return 0, ErrNoOutputs
	}

	if name != "" {
		for i, o := range ordered {
			if o.Name == name {
				return i, nil
			}
		}
	}

	for i, o := range ordered {
		if o.Focused {
			return i, nil
		}
	}

	return 0, ErrOutputNotFound
}
