package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sys/unix"
)

// ErrNoSocket is returned when no compositor socket can be located
var ErrNoSocket = errors.New("no sway or i3 socket found; set SWAYSOCK or pass --socket")

// DefaultSocketPath locates the compositor socket: $SWAYSOCK, then $I3SOCK,
// then the newest sway-ipc socket of the current user in the runtime dir.
func DefaultSocketPath() (string, error) {
	if p := os.Getenv("SWAYSOCK"); p != "" {
		return p, nil
	}
	if p := os.Getenv("I3SOCK"); p != "" {
		return p, nil
	}

	uid := unix.Getuid()
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = fmt.Sprintf("/run/user/%d", uid)
	}

	return findSwaySocket(runtimeDir, uid)
}

// findSwaySocket returns the most recently modified sway-ipc socket in dir
func findSwaySocket(dir string, uid int) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("sway-ipc.%d.*.sock", uid)))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", ErrNoSocket
	}

	modTime := func(p string) int64 {
		info, err := os.Stat(p)
		if err != nil {
			return 0
		}
		return info.ModTime().UnixNano()
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return modTime(matches[i]) > modTime(matches[j])
	})

	return matches[0], nil
}
