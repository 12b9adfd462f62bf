package cookie

import "errors"

var (
	ErrCookieNotFound = errors.New("cookie.not_found")
	ErrInvalidExpiry  = errors.New("cookie.invalid_expiry")
	ErrEmptyName      = errors.New("cookie.empty_name")
)
