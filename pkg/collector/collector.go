package collector

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
	"github.com/dmitrymomot/mobiledetect/pkg/logger"
)

// Name identifies the collector in the profiler.
const Name = "device.collector"

// ViewInfo describes one view in the panel.
type ViewInfo struct {
	Type      deviceview.View `json:"type"`
	Label     string          `json:"label"`
	Link      string          `json:"link"`
	IsCurrent bool            `json:"is_current"`
	Enabled   bool            `json:"enabled"`
}

// Data is what the collector records for a request.
type Data struct {
	CurrentView deviceview.View `json:"current_view"`
	Views       []ViewInfo      `json:"views"`
}

// Collector gathers the view state of requests for the profiler panel.
type Collector struct {
	redirect deviceview.RedirectConfig
	store    Store
	logger   *slog.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithRedirectConfig sets the redirect rules used to tell which views can be
// switched to from the current host.
func WithRedirectConfig(cfg deviceview.RedirectConfig) Option {
	return func(c *Collector) { c.redirect = cfg }
}

// WithStore sets the profile store. Defaults to a MemoryStore.
func WithStore(s Store) Option {
	return func(c *Collector) {
		if s != nil {
			c.store = s
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Collector) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Collector.
func New(opts ...Option) *Collector {
	c := &Collector{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = NewMemoryStore(DefaultCapacity)
	}
	c.logger = c.logger.With(logger.Component("collector"))
	return c
}

// Name returns the collector name.
func (c *Collector) Name() string { return Name }

// Store returns the profile store.
func (c *Collector) Store() Store { return c.store }

// Collect returns the current view and a switch link per view.
func (c *Collector) Collect(r *http.Request, dv *deviceview.DeviceView) Data {
	if dv == nil {
		dv = deviceview.New(r)
	}

	data := Data{CurrentView: dv.View()}
	if r == nil {
		return data
	}

	host := dv.SchemeAndHost()
	views := []struct {
		view    deviceview.View
		label   string
		current bool
	}{
		{deviceview.ViewDesktop, "Full", dv.IsDesktopView()},
		{deviceview.ViewTablet, "Tablet", dv.IsTabletView()},
		{deviceview.ViewMobile, "Mobile", dv.IsMobileView()},
	}

	data.Views = make([]ViewInfo, 0, len(views))
	for _, v := range views {
		data.Views = append(data.Views, ViewInfo{
			Type:      v.view,
			Label:     v.label,
			Link:      switchLink(r, dv, host, v.view),
			IsCurrent: v.current,
			Enabled:   c.canUseView(v.view, host),
		})
	}

	return data
}

// canUseView reports whether view can be served on host. A view whose
// redirect is enabled towards another host is not switchable here.
func (c *Collector) canUseView(view deviceview.View, host string) bool {
	rule := c.redirect.Rule(view)
	if rule == nil || !rule.Enabled || rule.Host == "" {
		return true
	}

	switch rule.Action {
	case deviceview.ActionRedirect, deviceview.ActionRedirectWithoutPath, "":
	default:
		return true
	}

	u, err := url.Parse(rule.Host)
	if err != nil || u.Host == "" {
		return true
	}

	return u.Scheme+"://"+u.Host == host
}

func switchLink(r *http.Request, dv *deviceview.DeviceView, host string, view deviceview.View) string {
	q := r.URL.Query()
	q.Set(dv.SwitchParam(), string(view))
	return host + r.URL.EscapedPath() + "?" + q.Encode()
}
