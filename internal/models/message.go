package models

// CommandResult is the outcome of one command in a RUN_COMMAND reply
type CommandResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// IsError returns true if the command was rejected
func (r *CommandResult) IsError() bool {
	return !r.Success
}

// GetError returns the error message if present
func (r *CommandResult) GetError() string {
	if r.Success {
		return ""
	}
	if r.Error == "" {
		return "command failed"
	}
	return r.Error
}

// Version is the GET_VERSION reply
type Version struct {
	Major                int    `json:"major"`
	Minor                int    `json:"minor"`
	Patch                int    `json:"patch"`
	HumanReadable        string `json:"human_readable"`
	LoadedConfigFileName string `json:"loaded_config_file_name"`
}
