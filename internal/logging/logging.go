package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultStateDir is the directory under $HOME used when $XDG_STATE_HOME is unset
	DefaultStateDir = ".local/state"
	// AppDir is the per-application subdirectory for the log file
	AppDir = "swaynav"
	// LogFile is the log file name
	LogFile = "swaynav.log"
)

var (
	Logger  = zerolog.Nop()
	logFile *os.File
	runID   string
)

// timestampHook adds timestamp at the end of each log event
type timestampHook struct{}

func (h timestampHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	e.Time("ts", time.Now())
}

// LogPath returns the log file location
func LogPath() string {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, DefaultStateDir)
	}
	return filepath.Join(base, AppDir, LogFile)
}

// Init opens the log file and tags every event with a per-invocation run id.
// On failure the logger stays a no-op and the error is returned.
func Init() error {
	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = f

	InitWriter(logFile)
	return nil
}

// InitWriter configures the logger to write to w
func InitWriter(w io.Writer) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.MessageFieldName = "msg"

	runID = uuid.NewString()
	Logger = zerolog.New(w).With().Str("run", runID).Logger().Hook(timestampHook{})
}

// RunID returns the id attached to this invocation's log events
func RunID() string {
	return runID
}

// SetDebug toggles debug level logging
func SetDebug(enabled bool) {
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Close closes the log file
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event
func Error() *zerolog.Event {
	return Logger.Error()
}
