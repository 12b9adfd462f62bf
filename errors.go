package mobiledetect

import "errors"

var (
	ErrInvalidAction     = errors.New("mobiledetect.invalid_action")
	ErrInvalidStatusCode = errors.New("mobiledetect.invalid_status_code")
	ErrEmptySwitchParam  = errors.New("mobiledetect.empty_switch_param")
	ErrInvalidCapacity   = errors.New("mobiledetect.invalid_profiler_capacity")
	ErrCookieConfig      = errors.New("mobiledetect.cookie_config")
)
