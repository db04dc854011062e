package cli

import "fmt"

// ConfigError represents an error in configuration, such as an unknown
// output format.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// FlagError reports a flag value that does not have the shape the flag
// expects, for example a --filter without '='.
type FlagError struct {
	Flag    string
	Value   string
	Message string
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("invalid --%s %q: %s", e.Flag, e.Value, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewFlagError creates a new FlagError.
func NewFlagError(flag, value, message string) *FlagError {
	return &FlagError{
		Flag:    flag,
		Value:   value,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}
