// Package viewhelper exposes device checks to templates.
//
// A Helper wraps the detected device and the resolved view of one request.
// FromRequest reads both from the context populated by the devicedetect
// middleware:
//
//	h := viewhelper.FromRequest(r, cfg.Redirect)
//	tmpl := template.Must(template.New("page").Funcs(h.FuncMap()).ParseFS(fs, "page.html"))
//
// Available template functions: isMobile, isTablet, isDevice, isDesktopView,
// isMobileView, isTabletView, isNotMobileView, isIOS, isAndroidOS,
// isWindowsOS, desktopViewURL, deviceVersion and rulesList.
//
// desktopViewURL gives the address of the current page on the desktop host,
// handy for <link rel="canonical"> on mobile pages.
package viewhelper
