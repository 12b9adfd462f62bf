package deviceview

import "github.com/dmitrymomot/mobiledetect/pkg/cookie"

// DefaultSwitchParam is the query parameter that forces a view.
const DefaultSwitchParam = "device_view"

type options struct {
	cookie         *cookie.Manager
	switchParam    string
	redirect       RedirectConfig
	trustForwarded bool
}

// Option configures a DeviceView.
type Option func(*options)

// WithCookie sets the manager used to read and write the view cookie.
func WithCookie(m *cookie.Manager) Option {
	return func(o *options) {
		if m != nil {
			o.cookie = m
		}
	}
}

// WithSwitchParam sets the query parameter name. Empty names are ignored.
func WithSwitchParam(name string) Option {
	return func(o *options) {
		if name != "" {
			o.switchParam = name
		}
	}
}

// WithRedirectConfig sets the per-view redirect rules.
func WithRedirectConfig(cfg RedirectConfig) Option {
	return func(o *options) { o.redirect = cfg }
}

// WithTrustForwardedHeaders makes SchemeAndHost honour X-Forwarded-Proto and
// X-Forwarded-Host. Enable it only behind a proxy that sets them.
func WithTrustForwardedHeaders(trust bool) Option {
	return func(o *options) { o.trustForwarded = trust }
}

func newOptions(opts []Option) options {
	o := options{switchParam: DefaultSwitchParam}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cookie == nil {
		// cookie.New only fails on an empty name
		o.cookie, _ = cookie.New(cookie.DefaultName)
	}
	return o
}
