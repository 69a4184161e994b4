package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration
var (
	ErrConfigNotFound   = goerr.New("configuration file not found")
	ErrInvalidConfig    = goerr.New("invalid configuration")
	ErrInvalidLogLevel  = goerr.New("invalid log level")
	ErrInvalidLogFormat = goerr.New("invalid log format")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	LogLevelKey   = "log_level"
	LogFormatKey  = "log_format"
	LogOutputKey  = "log_output"
)
