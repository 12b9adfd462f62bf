package deviceview

import (
	"net/http"
	"strings"
)

// DeviceView holds the view state of a single request.
//
// The requested view comes from the switch parameter when present, otherwise
// from the view cookie. The current view starts as the requested view and is
// filled in by detection when nothing was requested.
type DeviceView struct {
	opts      options
	request   *http.Request
	requested View
	view      View
}

// New resolves the requested view for r. A nil request yields a DeviceView in
// ViewNotMobile, which the listener treats as "nothing to do".
func New(r *http.Request, opts ...Option) *DeviceView {
	dv := &DeviceView{opts: newOptions(opts), request: r}

	if r == nil {
		dv.view = ViewNotMobile
		return dv
	}

	if dv.HasSwitchParam() {
		dv.view = dv.switchView(dv.SwitchParamValue())
	} else if value, err := dv.opts.cookie.Get(r); err == nil {
		if v, ok := ParseView(value); ok && v != ViewNotMobile {
			dv.view = v
		}
	}

	dv.requested = dv.view
	return dv
}

// View returns the current view, empty until resolved.
func (dv *DeviceView) View() View { return dv.view }

// RequestedView returns the view explicitly asked for by switch parameter or
// cookie, or an empty View.
func (dv *DeviceView) RequestedView() View { return dv.requested }

func (dv *DeviceView) IsDesktopView() bool   { return dv.view == ViewDesktop }
func (dv *DeviceView) IsTabletView() bool    { return dv.view == ViewTablet }
func (dv *DeviceView) IsMobileView() bool    { return dv.view == ViewMobile }
func (dv *DeviceView) IsNotMobileView() bool { return dv.view == ViewNotMobile }

func (dv *DeviceView) SetView(v View)    { dv.view = v }
func (dv *DeviceView) SetDesktopView()   { dv.view = ViewDesktop }
func (dv *DeviceView) SetTabletView()    { dv.view = ViewTablet }
func (dv *DeviceView) SetMobileView()    { dv.view = ViewMobile }
func (dv *DeviceView) SetNotMobileView() { dv.view = ViewNotMobile }

// Request returns the request the view was resolved for, nil outside a request.
func (dv *DeviceView) Request() *http.Request { return dv.request }

// HasSwitchParam reports whether the query string carries the switch parameter.
func (dv *DeviceView) HasSwitchParam() bool {
	return dv.request != nil && dv.request.URL.Query().Has(dv.opts.switchParam)
}

// SwitchParamValue returns the raw switch parameter value. It is "desktop"
// when the parameter is absent and empty without a request.
func (dv *DeviceView) SwitchParamValue() string {
	if dv.request == nil {
		return ""
	}
	q := dv.request.URL.Query()
	if !q.Has(dv.opts.switchParam) {
		return string(ViewDesktop)
	}
	return q.Get(dv.opts.switchParam)
}

// SwitchParam returns the switch parameter name.
func (dv *DeviceView) SwitchParam() string { return dv.opts.switchParam }

// CookieName returns the view cookie name.
func (dv *DeviceView) CookieName() string { return dv.opts.cookie.Name() }

// RedirectConfig returns the per-view redirect rules.
func (dv *DeviceView) RedirectConfig() RedirectConfig { return dv.opts.redirect }

// StatusCode returns the redirect status code for view.
func (dv *DeviceView) StatusCode(view View) int { return dv.opts.redirect.StatusCode(view) }

// Cookie builds the view cookie for view.
func (dv *DeviceView) Cookie(view View) *http.Cookie {
	return dv.opts.cookie.Cookie(string(view))
}

// ModifyResponse adds the view cookie to w. It must run before the response
// header is written.
func (dv *DeviceView) ModifyResponse(w http.ResponseWriter, view View) {
	http.SetCookie(w, dv.Cookie(view))
}

// RedirectResponse returns a redirect to url that also stores view in the
// cookie.
func (dv *DeviceView) RedirectResponse(view View, url string, statusCode int) *RedirectResponse {
	return &RedirectResponse{URL: url, StatusCode: statusCode, Cookie: dv.Cookie(view)}
}

// RedirectResponseBySwitchParam returns the redirect issued when the visitor
// picks a view through the switch parameter. The view and status code follow
// the switch value: mobile, tablet (mobile when tablets are detected as
// mobile) or desktop for anything else.
func (dv *DeviceView) RedirectResponseBySwitchParam(url string) *RedirectResponse {
	view := dv.switchView(dv.SwitchParamValue())
	return dv.RedirectResponse(view, url, dv.StatusCode(view))
}

// SchemeAndHost returns "scheme://host" for the request, without default
// ports. It is empty without a request.
func (dv *DeviceView) SchemeAndHost() string {
	if dv.request == nil {
		return ""
	}
	return SchemeAndHost(dv.request, dv.opts.trustForwarded)
}

func (dv *DeviceView) switchView(value string) View {
	switch v, _ := ParseView(value); v {
	case ViewMobile:
		return ViewMobile
	case ViewTablet:
		if dv.opts.redirect.DetectTabletAsMobile {
			return ViewMobile
		}
		return ViewTablet
	}
	return ViewDesktop
}

// SchemeAndHost returns "scheme://host" for r. Forwarded headers are used only
// when trustForwarded is set.
func SchemeAndHost(r *http.Request, trustForwarded bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if trustForwarded {
		if proto := firstHeaderValue(r, "X-Forwarded-Proto"); proto != "" {
			scheme = strings.ToLower(proto)
		}
		if fh := firstHeaderValue(r, "X-Forwarded-Host"); fh != "" {
			host = fh
		}
	}

	switch {
	case scheme == "http" && strings.HasSuffix(host, ":80"):
		host = strings.TrimSuffix(host, ":80")
	case scheme == "https" && strings.HasSuffix(host, ":443"):
		host = strings.TrimSuffix(host, ":443")
	}

	return scheme + "://" + host
}

func firstHeaderValue(r *http.Request, name string) string {
	v := r.Header.Get(name)
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
