package deviceview

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext stores dv in ctx.
func WithContext(ctx context.Context, dv *DeviceView) context.Context {
	return context.WithValue(ctx, contextKey{}, dv)
}

// FromContext returns the DeviceView stored in ctx, or nil.
func FromContext(ctx context.Context) *DeviceView {
	if ctx == nil {
		return nil
	}
	dv, _ := ctx.Value(contextKey{}).(*DeviceView)
	return dv
}

// LoggerExtractor returns a ContextExtractor for the logger that adds the
// resolved view as "device_view".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if dv := FromContext(ctx); dv != nil && dv.View() != "" {
			return slog.String("device_view", string(dv.View())), true
		}
		return slog.Attr{}, false
	}
}
