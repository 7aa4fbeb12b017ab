package config

// ConfigError is a custom error type for configuration errors
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidLineConfig ConfigError = "line config must be a mapping"
	ErrInvalidLineKey    ConfigError = "line id must be a non-negative integer, 'start_line' or 'start_direction'"
	ErrInvalidLineValue  ConfigError = "number of players in a line must be an integer greater than 0"
	ErrInvalidStartLine  ConfigError = "start_line must be a non-negative integer"
	ErrInvalidDirection  ConfigError = "start_direction must be 'left' or 'right'"
	ErrInvalidEnvValue   ConfigError = "invalid environment value"
)
