package logger

import "errors"

var (
	ErrInvalidLevel  = errors.New("logger.invalid_level")
	ErrInvalidFormat = errors.New("logger.invalid_format")
)
