package mobiledetect

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mobiledetect/pkg/collector"
	"github.com/dmitrymomot/mobiledetect/pkg/cookie"
	"github.com/dmitrymomot/mobiledetect/pkg/devicedetect"
	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
	"github.com/dmitrymomot/mobiledetect/pkg/useragent"
	"github.com/dmitrymomot/mobiledetect/pkg/viewhelper"
)

// Bundle wires the detection listener, the template helper factory and the
// profiler collector from a Config.
type Bundle struct {
	Config    Config
	Detector  *useragent.Detector
	Cookie    *cookie.Manager
	Listener  *devicedetect.Listener
	Collector *collector.Collector // nil when the profiler is disabled
}

type options struct {
	logger   *slog.Logger
	detector *useragent.Detector
	store    collector.Store
	routes   devicedetect.RouteOptions
	matcher  devicedetect.RouteMatcher
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger of the listener and the collector.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithDetector replaces the default user agent detector.
func WithDetector(d *useragent.Detector) Option {
	return func(o *options) { o.detector = d }
}

// WithProfileStore sets where the profiler keeps its profiles. The default is
// an in-memory store sized by Config.ProfilerCapacity.
func WithProfileStore(s collector.Store) Option {
	return func(o *options) { o.store = s }
}

// WithRouteOptions sets per-route overrides of the redirect action.
func WithRouteOptions(routes devicedetect.RouteOptions) Option {
	return func(o *options) { o.routes = routes }
}

// WithRouteMatcher sets how requests are mapped to route option patterns.
func WithRouteMatcher(m devicedetect.RouteMatcher) Option {
	return func(o *options) { o.matcher = m }
}

// New validates cfg and builds a Bundle. Rules with an invalid host are
// disabled with a warning, other config errors are returned.
func New(cfg Config, opts ...Option) (*Bundle, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.validate(log); err != nil {
		return nil, err
	}

	detector := o.detector
	if detector == nil {
		detector = useragent.NewDetector()
	}

	cm, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return nil, errors.Join(ErrCookieConfig, err)
	}

	redirect := cfg.RedirectConfig()

	listenerOpts := []devicedetect.Option{
		devicedetect.WithRedirectConfig(redirect),
		devicedetect.WithSaveRefererPath(cfg.SaveRefererPath),
		devicedetect.WithViewOptions(
			deviceview.WithCookie(cm),
			deviceview.WithSwitchParam(cfg.SwitchParam),
			deviceview.WithTrustForwardedHeaders(cfg.TrustForwardedHeaders),
		),
		devicedetect.WithLogger(o.logger),
	}
	if o.routes != nil {
		listenerOpts = append(listenerOpts, devicedetect.WithRouteOptions(o.routes))
	}
	if o.matcher != nil {
		listenerOpts = append(listenerOpts, devicedetect.WithRouteMatcher(o.matcher))
	}

	b := &Bundle{
		Config:   cfg,
		Detector: detector,
		Cookie:   cm,
		Listener: devicedetect.New(detector, listenerOpts...),
	}

	if cfg.ProfilerEnabled {
		store := o.store
		if store == nil {
			store = collector.NewMemoryStore(cfg.ProfilerCapacity)
		}
		collectorOpts := []collector.Option{
			collector.WithRedirectConfig(redirect),
			collector.WithStore(store),
		}
		if o.logger != nil {
			collectorOpts = append(collectorOpts, collector.WithLogger(o.logger))
		}
		b.Collector = collector.New(collectorOpts...)
	}

	return b, nil
}

// Middleware runs the listener and, when enabled, records a profile of every
// request that is not redirected.
func (b *Bundle) Middleware(next http.Handler) http.Handler {
	if b.Collector != nil {
		next = b.Collector.Middleware(next)
	}
	return b.Listener.Middleware(next)
}

// Helper returns the template helper for r.
func (b *Bundle) Helper(r *http.Request) *viewhelper.Helper {
	return viewhelper.FromRequest(r, b.Listener.RedirectConfig()).WithDetector(b.Detector)
}

// ProfilerHandler serves the profiler panel, or 404 when it is disabled.
func (b *Bundle) ProfilerHandler() http.Handler {
	if b.Collector == nil {
		return http.NotFoundHandler()
	}
	return b.Collector.Handler()
}
