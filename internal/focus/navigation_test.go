package focus

import (
	"errors"
	"testing"

	"github.com/yourusername/swaynav/internal/models"
)

func ws(num int64, output string, visible, focused bool) models.Workspace {
	return models.Workspace{Num: num, Output: output, Visible: visible, Focused: focused}
}

// Two outputs:
//
//	A: 1* 2
//	B: 3
func makeTwoOutputs() []models.Workspace {
	return []models.Workspace{
		ws(1, "A", true, true),
		ws(2, "A", false, false),
		ws(3, "B", true, false),
	}
}

func TestFindBy(t *testing.T) {
	tests := []struct {
		name       string
		workspaces []models.Workspace
		current    int64
		step       int64
		expected   int64
	}{
		{"next within range", makeTwoOutputs(), 1, 1, 2},
		{"prev clamps to first", makeTwoOutputs(), 1, -1, 1},
		{"next from last overflows", makeTwoOutputs(), 3, 1, 4},
		{"prev from last", makeTwoOutputs(), 3, -1, 2},
		{"single next creates", []models.Workspace{ws(5, "A", true, true)}, 5, 1, 6},
		{"single prev steps below since first is 1", []models.Workspace{ws(5, "A", true, true)}, 5, -1, 4},
		{"big step back clamps to 1", makeTwoOutputs(), 3, -5, 1},
		{"gap above current", []models.Workspace{ws(1, "A", true, true), ws(7, "A", false, false)}, 1, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindBy(tt.workspaces, tt.current, tt.step)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("FindBy(current=%d, step=%d) = %d, want %d", tt.current, tt.step, got, tt.expected)
			}
		})
	}
}

func TestFindBy_SingleWorkspaceAtOne(t *testing.T) {
	single := []models.Workspace{ws(1, "A", true, true)}

	prev, _ := FindBy(single, 1, -1)
	if prev != 1 {
		t.Errorf("prev from the only workspace 1 = %d, want 1", prev)
	}
	next, _ := FindBy(single, 1, 1)
	if next != 2 {
		t.Errorf("next from the only workspace 1 = %d, want 2", next)
	}
}

func TestFindBy_ClampsLargeBackwardSteps(t *testing.T) {
	for last := int64(1); last <= 12; last++ {
		var wss []models.Workspace
		for n := int64(1); n <= last; n++ {
			wss = append(wss, ws(n, "A", n == last, n == last))
		}

		got, _ := FindBy(wss, last, -5)
		want := last - 5
		if want < 1 {
			want = 1
		}
		if got != want {
			t.Errorf("last=%d: FindBy(step=-5) = %d, want %d", last, got, want)
		}
	}
}

func TestFindBy_RoundTrip(t *testing.T) {
	wss := []models.Workspace{
		ws(1, "A", false, false),
		ws(2, "A", true, false),
		ws(3, "B", true, false),
		ws(4, "B", false, false),
		ws(6, "B", false, false),
	}

	// Below the last workspace next then prev returns to the start.
	for _, start := range []int64{1, 2, 3, 4, 5} {
		next, _ := FindBy(wss, start, 1)
		back, _ := FindBy(wss, next, -1)
		if back != start {
			t.Errorf("start=%d: next=%d prev=%d, want round trip", start, next, back)
		}
	}

	// At the last workspace next overflows, so prev lands on the old last.
	next, _ := FindBy(wss, 6, 1)
	if next != 7 {
		t.Fatalf("next from last = %d, want 7", next)
	}
	back, _ := FindBy(wss, next, -1)
	if back != 6 {
		t.Errorf("prev from overflow = %d, want 6", back)
	}
}

func TestFindBy_Empty(t *testing.T) {
	_, err := FindBy(nil, 1, 1)
	if !errors.Is(err, ErrNoWorkspaces) {
		t.Errorf("expected ErrNoWorkspaces, got %v", err)
	}
}

func TestFindOnOutput(t *testing.T) {
	// A owns 1-3, B owns 5-6, A also owns 9.
	wss := []models.Workspace{
		ws(1, "A", false, false),
		ws(2, "A", false, false),
		ws(3, "A", true, false),
		ws(5, "B", true, false),
		ws(6, "B", false, false),
		ws(9, "A", false, false),
	}

	tests := []struct {
		name     string
		current  int64
		step     int64
		output   string
		expected int64
	}{
		{"next inside gap", 2, 1, "A", 3},
		{"next stops before other output", 3, 1, "A", 4},
		{"next at gap edge stays", 4, 1, "A", 4},
		{"prev to bottom", 1, -1, "A", 1},
		{"prev inside gap", 3, -1, "A", 2},
		{"B prev stops above A", 5, -1, "B", 4},
		{"B next inside own range", 5, 1, "B", 6},
		{"B next stops before A's 9", 6, 1, "B", 7},
		{"B at 8 cannot reach 9", 8, 1, "B", 8},
		{"A above everything is unbounded", 9, 1, "A", 10},
		{"A prev stops above B", 9, -1, "A", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindOnOutput(wss, tt.current, tt.step, tt.output)
			if got != tt.expected {
				t.Errorf("FindOnOutput(current=%d, step=%d, %s) = %d, want %d", tt.current, tt.step, tt.output, got, tt.expected)
			}
		})
	}
}

func TestFindOnOutput_IgnoresUnnumbered(t *testing.T) {
	wss := []models.Workspace{
		ws(-1, "B", true, false),
		ws(2, "A", true, true),
	}

	if got := FindOnOutput(wss, 2, -1, "A"); got != 1 {
		t.Errorf("prev = %d, want 1", got)
	}
}

func TestFindOutput(t *testing.T) {
	wss := makeTwoOutputs()

	if got := FindOutput(wss, 1, 1, "A"); got != 3 {
		t.Errorf("next-output from 1 = %d, want 3", got)
	}
	if got := FindOutput(wss, 1, -1, "A"); got != 1 {
		t.Errorf("prev-output from 1 = %d, want 1", got)
	}
	if got := FindOutput(wss, 3, -1, "B"); got != 1 {
		t.Errorf("prev-output from 3 = %d, want 1", got)
	}
	if got := FindOutput(wss, 1, 0, "A"); got != 1 {
		t.Errorf("zero step = %d, want 1", got)
	}
}

func TestFindOutput_PicksNearest(t *testing.T) {
	// Visible: 2 on A, 5 on B (current), 8 on C, 11 on D. Hidden 4 on A.
	wss := []models.Workspace{
		ws(2, "A", true, false),
		ws(4, "A", false, false),
		ws(11, "D", true, false),
		ws(5, "B", true, true),
		ws(8, "C", true, false),
	}

	if got := FindOutput(wss, 5, 1, "B"); got != 8 {
		t.Errorf("next-output = %d, want 8", got)
	}
	if got := FindOutput(wss, 5, -1, "B"); got != 2 {
		t.Errorf("prev-output = %d, want 2 (hidden 4 must be skipped)", got)
	}
	if got := FindOutput(wss, 11, 1, "D"); got != 11 {
		t.Errorf("next-output from topmost = %d, want 11", got)
	}
}

func makeLayout() ([]models.Workspace, []models.Output) {
	// left(x=0): 1 2*   middle(x=1920): 4 6   right(x=3840): 7
	wss := []models.Workspace{
		ws(1, "left", false, false),
		ws(2, "left", true, true),
		ws(6, "middle", false, false),
		ws(4, "middle", true, false),
		ws(7, "right", true, false),
	}
	outputs := SortOutputs([]models.Output{
		{Name: "right", Active: true, Rect: models.Rect{X: 3840}, CurrentWorkspace: "7"},
		{Name: "left", Active: true, Focused: true, Rect: models.Rect{X: 0}, CurrentWorkspace: "2"},
		{Name: "middle", Active: true, Rect: models.Rect{X: 1920}, CurrentWorkspace: "4"},
	})
	return wss, outputs
}

func TestLayoutAware(t *testing.T) {
	wss, outputs := makeLayout()

	tests := []struct {
		name     string
		current  int64
		output   string
		step     int64
		expected int64
	}{
		{"within output backward", 2, "left", -1, 1},
		{"last on output forward jumps right", 2, "left", 1, 4},
		{"first of leftmost backward saturates", 1, "left", -1, 2},
		{"middle first backward jumps left", 4, "middle", -1, 2},
		{"middle forward within", 4, "middle", 1, 6},
		{"middle last forward jumps right", 6, "middle", 1, 7},
		{"rightmost forward saturates", 7, "right", 1, 7},
		{"rightmost backward jumps middle", 7, "right", -1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LayoutAware(wss, tt.current, tt.output, tt.step, outputs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("LayoutAware(current=%d, %s, step=%d) = %d, want %d", tt.current, tt.output, tt.step, got, tt.expected)
			}
		})
	}
}

func TestLayoutAware_StaysOnOutputAwayFromEdges(t *testing.T) {
	var wss []models.Workspace
	for n := int64(1); n <= 5; n++ {
		wss = append(wss, ws(n, "A", n == 3, n == 3))
	}
	wss = append(wss, ws(10, "B", true, false))
	outputs := SortOutputs([]models.Output{
		{Name: "A", Active: true, Rect: models.Rect{X: 0}, CurrentWorkspace: "3"},
		{Name: "B", Active: true, Rect: models.Rect{X: 100}, CurrentWorkspace: "10"},
	})

	own := map[int64]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, current := range []int64{2, 3, 4} {
		for _, step := range []int64{-1, 1} {
			got, err := LayoutAware(wss, current, "A", step, outputs)
			if err != nil {
				t.Fatalf("current=%d step=%d: %v", current, step, err)
			}
			if !own[got] || got != current+step {
				t.Errorf("current=%d step=%d: got %d, want %d on output A", current, step, got, current+step)
			}
		}
	}
}

func TestLayoutAware_Errors(t *testing.T) {
	wss, outputs := makeLayout()

	_, err := LayoutAware(wss, 3, "left", 1, outputs)
	if !errors.Is(err, ErrWorkspaceNotOnOutput) {
		t.Errorf("expected ErrWorkspaceNotOnOutput, got %v", err)
	}

	_, err = LayoutAware(wss, 2, "left", 1, nil)
	if !errors.Is(err, ErrNoOutputs) {
		t.Errorf("expected ErrNoOutputs, got %v", err)
	}

	unnamed := []models.Output{{Name: "other", Active: true, CurrentWorkspace: "1"}}
	_, err = LayoutAware(wss, 2, "left", 1, unnamed)
	if !errors.Is(err, ErrOutputNotFound) {
		t.Errorf("expected ErrOutputNotFound, got %v", err)
	}

	broken := []models.Output{
		{Name: "left", Active: true, Rect: models.Rect{X: 0}, CurrentWorkspace: "2"},
		{Name: "middle", Active: true, Rect: models.Rect{X: 1920}, CurrentWorkspace: "scratch"},
	}
	if _, err = LayoutAware(wss, 2, "left", 1, broken); err == nil {
		t.Error("expected error for non-numeric neighbor workspace")
	}
}
