package focus

import (
	"fmt"
	"sort"

	"github.com/yourusername/swaynav/internal/models"
)

// FindBy moves linearly through workspace numbers, ignoring outputs.
// The range is [1, max]. Stepping forward from the highest workspace is
// allowed to go past it so a new workspace gets created.
func FindBy(workspaces []models.Workspace, current, step int64) (int64, error) {
	if len(workspaces) == 0 {
		return 0, ErrNoWorkspaces
	}

	var first int64 = 1
	last := workspaces[0].Num
	for _, w := range workspaces[1:] {
		if w.Num > last {
			last = w.Num
		}
	}

	next := current + step
	switch {
	case current == last && step > 0:
		next = last + step
	case next < first:
		next = first
	case next > last:
		next = last
	}

	return next, nil
}

// FindOnOutput moves within the gap of numbers not claimed by other outputs.
// The lower bound is one past the closest other-output number below current
// (or 1). Upward the gap is open unless another output owns a higher number.
func FindOnOutput(workspaces []models.Workspace, current, step int64, output string) int64 {
	var below int64
	var above int64
	hasAbove := false

	for _, w := range workspaces {
		if w.Output == output {
			continue
		}
		if w.Num < current && w.Num > below {
			below = w.Num
		}
		if w.Num > current && (!hasAbove || w.Num < above) {
			above = w.Num
			hasAbove = true
		}
	}

	next := current + step
	first := below + 1
	last := next
	if hasAbove {
		last = above - 1
	}

	if next < first {
		next = first
	} else if next > last {
		next = last
	}

	return next
}

// FindOutput jumps to the nearest workspace visible on another output.
// Returns current when nothing lies in the requested direction.
func FindOutput(workspaces []models.Workspace, current, step int64, output string) int64 {
	var candidates []int64
	for _, w := range workspaces {
		if w.Output != output && w.Visible {
			candidates = append(candidates, w.Num)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	switch {
	case step < 0:
		for i := len(candidates) - 1; i >= 0; i-- {
			if candidates[i] < current {
				return candidates[i]
			}
		}
	case step > 0:
		for _, n := range candidates {
			if n > current {
				return n
			}
		}
	}

	return current
}

// LayoutAware steps through the current output's workspaces and falls
// through to the neighboring output at either end. outputs must already be
// in navigation order (see SortOutputs).
func LayoutAware(workspaces []models.Workspace, current int64, output string, step int64, outputs []models.Output) (int64, error) {
	var nums []int64
	for _, w := range workspaces {
		if w.Output == output {
			nums = append(nums, w.Num)
		}
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	idx := -1
	for i, n := range nums {
		if n == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("workspace %d on %s: %w", current, output, ErrWorkspaceNotOnOutput)
	}

	if (idx == 0 && step < 0) || (idx == len(nums)-1 && step > 0) {
		return neighborWorkspace(outputs, output, step)
	}

	target := int64(idx) + step
	if target < 0 || target >= int64(len(nums)) {
		return 0, fmt.Errorf("index %d of %d on %s: %w", target, len(nums), output, ErrIndexOutOfRange)
	}
	return nums[target], nil
}

// neighborWorkspace returns the workspace shown on the output step positions
// away from the current one, saturating at both ends of the ordering.
func neighborWorkspace(outputs []models.Output, output string, step int64) (int64, error) {
	idx, err := OutputIndex(outputs, output)
	if err != nil {
		return 0, err
	}

	target := int64(idx) + step
	if target < 0 {
		target = 0
	}
	if last := int64(len(outputs) - 1); target > last {
		target = last
	}

	return outputs[target].CurrentWorkspaceNum()
}
