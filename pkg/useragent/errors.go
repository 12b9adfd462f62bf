package useragent

import "errors"

var (
	ErrEmptyUserAgent = errors.New("useragent.empty")
	ErrUnknownDevice  = errors.New("useragent.unknown_device")
)
