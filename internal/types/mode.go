package types

import (
	"fmt"
	"strings"
)

// Mode selects how the target workspace is computed
type Mode int

const (
	ModeNext Mode = iota
	ModePrev
	ModeNextOutput
	ModePrevOutput
	ModeNextOnOutput
	ModePrevOnOutput
	ModeNextLayoutAware
	ModePrevLayoutAware
)

var modeNames = []string{
	"next",
	"prev",
	"next-output",
	"prev-output",
	"next-on-output",
	"prev-on-output",
	"next-layout-aware",
	"prev-layout-aware",
}

// ModeNames returns the command-line names of all modes in declaration order
func ModeNames() []string {
	names := make([]string, len(modeNames))
	copy(names, modeNames)
	return names
}

// String returns the command-line name of a Mode
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode converts a command-line name to a Mode
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (valid: %s)", s, strings.Join(modeNames, ", "))
}

// Step returns +1 for forward modes and -1 for backward modes
func (m Mode) Step() int64 {
	switch m {
	case ModePrev, ModePrevOutput, ModePrevOnOutput, ModePrevLayoutAware:
		return -1
	default:
		return 1
	}
}

// NeedsOutputs reports whether the mode requires an output snapshot
func (m Mode) NeedsOutputs() bool {
	return m == ModeNextLayoutAware || m == ModePrevLayoutAware
}

// MarshalText encodes a Mode by name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
