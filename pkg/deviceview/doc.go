// Package deviceview holds the per-request view state of a device-aware site.
//
// A view is one of mobile, tablet, desktop or not_mobile. The visitor can ask
// for a view explicitly, either with the switch query parameter
// (default "device_view") or with the view cookie set on an earlier visit.
// The switch parameter wins over the cookie. When neither is present the view
// stays empty until the devicedetect listener fills it from the user agent.
//
//	dv := deviceview.New(r,
//		deviceview.WithSwitchParam("device_view"),
//		deviceview.WithRedirectConfig(cfg),
//	)
//
//	if dv.HasSwitchParam() {
//		dv.RedirectResponseBySwitchParam(url).Render(w, r)
//	}
//
// RedirectConfig carries one optional RedirectRule per view (mobile, tablet,
// desktop): whether the redirect is enabled, the host serving the view, the
// status code and the Action. "full" is accepted on input as an alias of
// desktop.
//
// RedirectResponse always carries the view cookie, so the choice survives the
// hop to the other host. DataStar requests are answered with an SSE redirect.
package deviceview
