package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors". It returns an empty Attr
// when all are nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". It returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// DeviceView records the resolved view under "device_view".
func DeviceView(view string) slog.Attr {
	return slog.String("device_view", view)
}

// RedirectURL records a redirect target under "redirect_url".
func RedirectURL(u string) slog.Attr {
	return slog.String("redirect_url", u)
}

// UserAgent records the raw user agent under "user_agent".
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}

// ProfileToken records a profiler token under "profile_token".
func ProfileToken(token string) slog.Attr {
	return slog.String("profile_token", token)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}
