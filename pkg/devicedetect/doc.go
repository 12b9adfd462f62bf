// Package devicedetect decides which view a request is served with.
//
// The Listener combines the user agent detector with the per-request
// DeviceView. For every request it:
//
//   - answers a switch-parameter request with a redirect that stores the chosen
//     view in the cookie, either to the host of that view or back to the
//     current page without the parameter;
//   - detects the view from the user agent when neither the switch parameter
//     nor the cookie asked for one (tablets get their own view unless
//     DetectTabletAsMobile is set);
//   - redirects to the host configured for the view when that host differs
//     from the current one and the route does not opt out;
//   - otherwise lets the request through and, if the view was detected rather
//     than requested, adds the view cookie to the response.
//
// Use it as middleware:
//
//	l := devicedetect.New(useragent.NewDetector(),
//		devicedetect.WithRedirectConfig(cfg),
//		devicedetect.WithRouteMatcher(devicedetect.ChiMatcher{Routes: r}),
//		devicedetect.WithLogger(log),
//	)
//	r.Use(l.Middleware)
//
// Handlers read the state with deviceview.FromContext and DeviceFromContext.
// The middleware also tags the active OpenTelemetry span with device.view,
// device.view.requested and device.redirect.
//
// Route options override the configured redirect action per route pattern.
// Patterns are produced by the RouteMatcher: the request path by default, or
// the chi pattern with ChiMatcher.
package devicedetect
