package devicedetect

import (
	"context"

	"github.com/dmitrymomot/mobiledetect/pkg/useragent"
)

type deviceKey struct{}

// WithDevice stores the detected device in ctx.
func WithDevice(ctx context.Context, dev useragent.Device) context.Context {
	return context.WithValue(ctx, deviceKey{}, dev)
}

// DeviceFromContext returns the device detected for the request.
func DeviceFromContext(ctx context.Context) (useragent.Device, bool) {
	if ctx == nil {
		return useragent.Device{}, false
	}
	dev, ok := ctx.Value(deviceKey{}).(useragent.Device)
	return dev, ok
}
