package devicedetect

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
)

// RouteOptions overrides the redirect action per route pattern and view, e.g.
//
//	devicedetect.RouteOptions{
//		"/checkout/*": {deviceview.ViewMobile: deviceview.ActionNoRedirect},
//	}
type RouteOptions map[string]map[deviceview.View]deviceview.Action

// Action returns the override for pattern and view, or an empty Action.
func (ro RouteOptions) Action(pattern string, view deviceview.View) deviceview.Action {
	if ro == nil || pattern == "" {
		return ""
	}
	return ro[pattern][view]
}

// RouteMatcher maps a request to the route pattern used as RouteOptions key.
type RouteMatcher interface {
	MatchRoute(r *http.Request) string
}

// RouteMatcherFunc adapts a function to RouteMatcher.
type RouteMatcherFunc func(r *http.Request) string

func (f RouteMatcherFunc) MatchRoute(r *http.Request) string { return f(r) }

// PathMatcher uses the request path as pattern. It is the default.
var PathMatcher RouteMatcherFunc = func(r *http.Request) string { return r.URL.Path }

// ChiMatcher resolves the chi route pattern for the request, e.g.
// "/articles/{id}". Middleware registered with Router.Use runs before chi
// has routed the request, so the pattern is looked up on Routes.
type ChiMatcher struct {
	Routes chi.Routes
}

// MatchRoute returns the matched pattern or an empty string.
func (m ChiMatcher) MatchRoute(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	if m.Routes == nil {
		return ""
	}

	rctx := chi.NewRouteContext()
	if !m.Routes.Match(rctx, r.Method, r.URL.Path) {
		return ""
	}
	return rctx.RoutePattern()
}
