package devicedetect

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
	"github.com/dmitrymomot/mobiledetect/pkg/logger"
	"github.com/dmitrymomot/mobiledetect/pkg/useragent"
)

// Listener decides, per request, which view to serve, whether to redirect to
// another host and whether the response must store the view cookie.
// It is safe for concurrent use.
type Listener struct {
	detector        *useragent.Detector
	redirect        deviceview.RedirectConfig
	routes          RouteOptions
	matcher         RouteMatcher
	saveRefererPath bool
	viewOpts        []deviceview.Option
	logger          *slog.Logger
}

// Result is the outcome of HandleRequest.
type Result struct {
	View   *deviceview.DeviceView
	Device useragent.Device
	// Response is set when the request must be answered with a redirect.
	Response *deviceview.RedirectResponse
	// ModifyResponse is set when the response must carry the view cookie.
	ModifyResponse bool
}

// New creates a Listener. A nil detector gets the default one.
func New(detector *useragent.Detector, opts ...Option) *Listener {
	if detector == nil {
		detector = useragent.NewDetector()
	}

	l := &Listener{
		detector:        detector,
		matcher:         PathMatcher,
		saveRefererPath: true,
		logger:          discardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.viewOpts = append([]deviceview.Option{deviceview.WithRedirectConfig(l.redirect)}, l.viewOpts...)
	l.logger = l.logger.With(logger.Component("devicedetect"))

	return l
}

// Detector returns the user agent detector.
func (l *Listener) Detector() *useragent.Detector { return l.detector }

// RedirectConfig returns the per-view redirect rules.
func (l *Listener) RedirectConfig() deviceview.RedirectConfig { return l.redirect }

// HandleRequest resolves the view for r.
func (l *Listener) HandleRequest(r *http.Request) Result {
	dv := deviceview.New(r, l.viewOpts...)
	res := Result{View: dv}

	if dv.IsNotMobileView() {
		return res
	}

	res.Device = l.detector.Detect(r.UserAgent())

	if dv.HasSwitchParam() {
		res.Response = dv.RedirectResponseBySwitchParam(l.switchRedirectURL(r, dv))
		l.logger.DebugContext(r.Context(), "view switched",
			logger.DeviceView(string(dv.View())),
			logger.RedirectURL(res.Response.URL),
		)
		return res
	}

	cookieIsSet := dv.RequestedView() != ""
	if !cookieIsSet {
		switch {
		case !l.redirect.DetectTabletAsMobile && res.Device.IsTablet():
			dv.SetTabletView()
		case res.Device.IsMobile():
			dv.SetMobileView()
		default:
			dv.SetDesktopView()
		}
	}

	view := dv.View()
	if view != "" && l.mustRedirect(r, dv, view) {
		if target := l.redirectURL(r, dv, view); target != "" {
			res.Response = dv.RedirectResponse(view, target, dv.StatusCode(view))
			l.logger.DebugContext(r.Context(), "redirecting to view host",
				logger.DeviceView(string(view)),
				logger.RedirectURL(target),
			)
		}
		return res
	}

	if cookieIsSet {
		return res
	}

	res.ModifyResponse = true
	l.logger.DebugContext(r.Context(), "view detected",
		logger.DeviceView(string(view)),
		logger.UserAgent(r.UserAgent()),
	)
	return res
}

// switchRedirectURL builds the target of a switch-parameter redirect.
func (l *Listener) switchRedirectURL(r *http.Request, dv *deviceview.DeviceView) string {
	view := dv.View()
	if l.mustRedirect(r, dv, view) {
		if target := l.redirectURL(r, dv, view); target != "" {
			return target
		}
	}

	if !l.saveRefererPath {
		return dv.SchemeAndHost()
	}

	target := dv.SchemeAndHost() + requestPath(r)
	q := r.URL.Query()
	q.Del(dv.SwitchParam())
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	return target
}

// mustRedirect reports whether the visitor must be sent to the host of view.
func (l *Listener) mustRedirect(r *http.Request, dv *deviceview.DeviceView, view deviceview.View) bool {
	rule := l.redirect.Rule(view)
	if rule == nil || !rule.Enabled {
		return false
	}
	if l.routingOption(r, view) == deviceview.ActionNoRedirect {
		return false
	}
	return dv.SchemeAndHost() != strings.TrimRight(rule.Host, "/")
}

// routingOption returns the redirect action for view on the current route.
// A route override wins over the view rule, a rule without action redirects.
// Unknown actions yield "".
func (l *Listener) routingOption(r *http.Request, view deviceview.View) deviceview.Action {
	action := l.routes.Action(l.matcher.MatchRoute(r), view)
	if action == "" {
		if rule := l.redirect.Rule(view); rule != nil {
			action = rule.Action
			if action == "" {
				action = deviceview.ActionRedirect
			}
		}
	}

	if a, ok := deviceview.ParseAction(string(action)); ok {
		return a
	}
	return ""
}

// redirectURL builds the URL on the host of view. The switch parameter is
// always added so the target host, which cannot read our cookie, does not
// bounce the visitor back.
func (l *Listener) redirectURL(r *http.Request, dv *deviceview.DeviceView, view deviceview.View) string {
	rule := l.redirect.Rule(view)
	if rule == nil {
		return ""
	}

	switch l.routingOption(r, view) {
	case deviceview.ActionRedirect:
		q := r.URL.Query()
		q.Set(dv.SwitchParam(), string(view))
		return strings.TrimRight(rule.Host, "/") + requestPath(r) + "?" + q.Encode()
	case deviceview.ActionRedirectWithoutPath:
		return rule.Host + "?" + url.QueryEscape(dv.SwitchParam()) + "=" + url.QueryEscape(string(view))
	}
	return ""
}

func requestPath(r *http.Request) string {
	if p := r.URL.EscapedPath(); p != "" {
		return p
	}
	return "/"
}
