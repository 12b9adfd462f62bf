package config

import "errors"

var (
	ErrParsingConfig  = errors.New("config.parse_failed")
	ErrInvalidConfig  = errors.New("config.invalid")
	ErrLoadingEnvFile = errors.New("config.env_file")
	ErrNilPointer     = errors.New("config.nil_pointer")
)
