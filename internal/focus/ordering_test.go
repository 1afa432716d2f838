package focus

import (
	"errors"
	"reflect"
	"testing"

	"github.com/yourusername/swaynav/internal/models"
)

func out(name string, x, y int64) models.Output {
	return models.Output{Name: name, Active: true, Rect: models.Rect{X: x, Y: y, Width: 1920, Height: 1080}}
}

func names(outputs []models.Output) []string {
	result := make([]string, len(outputs))
	for i, o := range outputs {
		result[i] = o.Name
	}
	return result
}

// Layout:
//
//	+------+------+
//	| top  |      |
//	+------+ wide |
//	| bot  |      |
//	+------+------+
func TestSortOutputs(t *testing.T) {
	outputs := []models.Output{
		out("wide", 1920, 0),
		out("bot", 0, 1080),
		out("top", 0, 0),
	}

	got := names(SortOutputs(outputs))
	want := []string{"top", "bot", "wide"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortOutputs() = %v, want %v", got, want)
	}

	// Input is left untouched.
	if outputs[0].Name != "wide" {
		t.Errorf("SortOutputs mutated its input: %v", names(outputs))
	}
}

func TestSortOutputs_Idempotent(t *testing.T) {
	outputs := []models.Output{
		out("c", 3840, 0),
		out("a", 0, 0),
		out("d", 3840, -200),
		out("b", 1920, 500),
		out("e", -1920, 0),
	}

	once := SortOutputs(outputs)
	twice := SortOutputs(once)
	if !reflect.DeepEqual(names(once), names(twice)) {
		t.Errorf("sorting twice changed order: %v -> %v", names(once), names(twice))
	}

	want := []string{"e", "a", "b", "d", "c"}
	if !reflect.DeepEqual(names(once), want) {
		t.Errorf("SortOutputs() = %v, want %v", names(once), want)
	}
}

func TestSortOutputs_TiesKeepInputOrder(t *testing.T) {
	outputs := []models.Output{
		out("mirror-1", 0, 0),
		out("mirror-2", 0, 0),
		out("left", -100, 0),
	}

	got := names(SortOutputs(outputs))
	want := []string{"left", "mirror-1", "mirror-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortOutputs() = %v, want %v", got, want)
	}
}

func TestCompareOutputs_TotalOrder(t *testing.T) {
	outputs := []models.Output{
		out("a", 0, 0), out("b", 0, 10), out("c", 10, 0), out("d", 10, 10), out("e", 0, 0),
	}

	for _, a := range outputs {
		for _, b := range outputs {
			ab := CompareOutputs(a, b)
			ba := CompareOutputs(b, a)
			if ab != -ba {
				t.Errorf("Compare(%s,%s)=%d but Compare(%s,%s)=%d", a.Name, b.Name, ab, b.Name, a.Name, ba)
			}
			if ab == 0 && a.Rect.X != b.Rect.X && a.Rect.Y != b.Rect.Y {
				t.Errorf("Compare(%s,%s)=0 for different positions", a.Name, b.Name)
			}
		}
	}
}

func TestOutputIndex(t *testing.T) {
	ordered := SortOutputs([]models.Output{out("a", 0, 0), out("b", 1920, 0)})

	idx, err := OutputIndex(ordered, "b")
	if err != nil || idx != 1 {
		t.Errorf("OutputIndex(b) = %d, %v; want 1, nil", idx, err)
	}

	ordered[0].Focused = true
	idx, err = OutputIndex(ordered, "missing")
	if err != nil || idx != 0 {
		t.Errorf("OutputIndex fallback = %d, %v; want 0, nil", idx, err)
	}

	if _, err := OutputIndex(nil, "a"); !errors.Is(err, ErrNoOutputs) {
		t.Errorf("expected ErrNoOutputs, got %v", err)
	}
}
