package devicedetect

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
)

// Option configures a Listener.
type Option func(*Listener)

// WithRedirectConfig sets the per-view redirect rules.
func WithRedirectConfig(cfg deviceview.RedirectConfig) Option {
	return func(l *Listener) { l.redirect = cfg }
}

// WithRouteOptions sets per-route overrides of the redirect action.
func WithRouteOptions(routes RouteOptions) Option {
	return func(l *Listener) { l.routes = routes }
}

// WithRouteMatcher sets how a request is mapped to a route pattern for the
// route options lookup.
func WithRouteMatcher(m RouteMatcher) Option {
	return func(l *Listener) {
		if m != nil {
			l.matcher = m
		}
	}
}

// WithSaveRefererPath controls where a switch-parameter request goes when no
// cross-host redirect is due. When true (default) the visitor stays on the
// current path and query, minus the switch parameter. When false the visitor
// is sent to the site root.
func WithSaveRefererPath(save bool) Option {
	return func(l *Listener) { l.saveRefererPath = save }
}

// WithViewOptions passes options to every DeviceView the listener builds.
func WithViewOptions(opts ...deviceview.Option) Option {
	return func(l *Listener) { l.viewOpts = append(l.viewOpts, opts...) }
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Listener) {
		if log != nil {
			l.logger = log
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
