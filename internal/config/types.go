package config

// Config is the root configuration structure
type Config struct {
	Settings Settings `yaml:"settings" json:"settings"`
}

// Settings holds defaults for the navigation command. Command-line flags
// that are set explicitly take precedence.
type Settings struct {
	Socket      string `yaml:"socket,omitempty" json:"socket,omitempty"`           // IPC socket path; empty means auto-detect
	Timeout     string `yaml:"timeout,omitempty" json:"timeout,omitempty"`         // Go duration, "" or "0" blocks forever
	DefaultMode string `yaml:"defaultMode,omitempty" json:"defaultMode,omitempty"` // Mode used when none is given
	Move        bool   `yaml:"move" json:"move"`                                   // Also move the focused container
	NoFocus     bool   `yaml:"noFocus" json:"noFocus"`                             // Do not focus the target
	Stdout      bool   `yaml:"stdout" json:"stdout"`                               // Print the target number
}
