// Package mobiledetect detects whether a request comes from a phone, a tablet
// or a desktop browser and adapts the response to it.
//
// The Bundle puts the pieces together from an environment Config:
//
//   - devicedetect.Listener resolves the view of each request, keeps it in a
//     cookie and redirects between device specific hosts.
//   - viewhelper.Helper exposes the device checks to templates.
//   - collector.Collector records a profile per request for the debug panel.
//
// Basic usage:
//
//	cfg, err := mobiledetect.LoadConfig()
//	if err != nil {
//		return err
//	}
//
//	bundle, err := mobiledetect.New(cfg, mobiledetect.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	r := chi.NewRouter()
//	r.Use(bundle.Middleware)
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		if bundle.Helper(r).IsMobileView() {
//			// render the mobile template
//		}
//	})
//
// Redirect rules are read from MOBILE_DETECT_MOBILE_*, MOBILE_DETECT_TABLET_*
// and MOBILE_DETECT_FULL_* (IS_ENABLED, HOST, STATUS_CODE, ACTION). See
// Config for the rest.
package mobiledetect
