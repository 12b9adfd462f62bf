package viewhelper

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/dmitrymomot/mobiledetect/pkg/devicedetect"
	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
	"github.com/dmitrymomot/mobiledetect/pkg/useragent"
)

// Version output types accepted by DeviceVersion.
const (
	VersionText  = "text"
	VersionFloat = "float"
)

// Helper exposes the device checks of a single request to templates.
type Helper struct {
	device   useragent.Device
	detector *useragent.Detector
	view     *deviceview.DeviceView
	redirect deviceview.RedirectConfig
	request  *http.Request
}

// New builds a Helper. view and r may be nil outside a request, in which
// case the view is not_mobile and DesktopViewURL returns the bare host.
func New(device useragent.Device, view *deviceview.DeviceView, redirect deviceview.RedirectConfig, r *http.Request) *Helper {
	if view == nil {
		view = deviceview.New(nil)
	}
	return &Helper{device: device, view: view, redirect: redirect, request: r}
}

// FromRequest builds a Helper from the state stored in the request context by
// the devicedetect middleware. Without it, the device is detected here and
// the view is resolved from the request only.
func FromRequest(r *http.Request, redirect deviceview.RedirectConfig) *Helper {
	if r == nil {
		return New(useragent.Device{}, nil, redirect, nil)
	}

	view := deviceview.FromContext(r.Context())
	if view == nil {
		view = deviceview.New(r, deviceview.WithRedirectConfig(redirect))
	}

	device, ok := devicedetect.DeviceFromContext(r.Context())
	if !ok {
		device = useragent.NewDetector().Detect(r.UserAgent())
	}

	return New(device, view, redirect, r)
}

// WithDetector sets the detector whose rules RulesList reports.
func (h *Helper) WithDetector(d *useragent.Detector) *Helper {
	h.detector = d
	return h
}

func (h *Helper) IsMobile() bool            { return h.device.IsMobile() }
func (h *Helper) IsTablet() bool            { return h.device.IsTablet() }
func (h *Helper) IsDevice(name string) bool { return h.device.Is(name) }
func (h *Helper) IsDesktopView() bool       { return h.view.IsDesktopView() }
func (h *Helper) IsMobileView() bool        { return h.view.IsMobileView() }
func (h *Helper) IsTabletView() bool        { return h.view.IsTabletView() }
func (h *Helper) IsNotMobileView() bool     { return h.view.IsNotMobileView() }
func (h *Helper) IsIOS() bool               { return h.device.IsIOS() }
func (h *Helper) IsAndroidOS() bool         { return h.device.IsAndroidOS() }
func (h *Helper) IsWindowsOS() bool         { return h.device.IsWindowsOS() }

// View returns the per-request view state.
func (h *Helper) View() *deviceview.DeviceView { return h.view }

// DesktopViewURL returns the URL of the current page on the desktop host,
// e.g. for a canonical link on mobile pages. It is empty when no desktop host
// is configured. Without a request, or when addPathAndQuery is false, it is
// the desktop host itself.
func (h *Helper) DesktopViewURL(addPathAndQuery bool) string {
	rule := h.redirect.Desktop
	if rule == nil || rule.Host == "" {
		return ""
	}
	if h.request == nil || !addPathAndQuery {
		return rule.Host
	}

	result := strings.TrimRight(rule.Host, "/") + h.request.URL.EscapedPath()
	if query := h.request.URL.Query().Encode(); query != "" {
		result += "?" + query
	}
	return result
}

// DeviceVersion returns the version of property as a string, or as a float64
// when typ is "float". It returns nil when no version is known.
func (h *Helper) DeviceVersion(property string, typ ...string) any {
	if len(typ) > 0 && strings.EqualFold(typ[0], VersionFloat) {
		if v := h.device.VersionFloat(property); v != 0 {
			return v
		}
		return nil
	}

	if v := h.device.Version(property); v != "" && v != "0" {
		return v
	}
	return nil
}

// RulesList returns the detection rules grouped by class.
func (h *Helper) RulesList() map[string][]string {
	if h.detector == nil {
		return useragent.NewDetector().Rules()
	}
	return h.detector.Rules()
}

// FuncMap returns the helper methods as template functions.
func (h *Helper) FuncMap() template.FuncMap {
	return template.FuncMap{
		"isMobile":        h.IsMobile,
		"isTablet":        h.IsTablet,
		"isDevice":        h.IsDevice,
		"isDesktopView":   h.IsDesktopView,
		"isMobileView":    h.IsMobileView,
		"isTabletView":    h.IsTabletView,
		"isNotMobileView": h.IsNotMobileView,
		"isIOS":           h.IsIOS,
		"isAndroidOS":     h.IsAndroidOS,
		"isWindowsOS":     h.IsWindowsOS,
		"desktopViewURL":  h.desktopViewURL,
		"deviceVersion":   h.DeviceVersion,
		"rulesList":       h.RulesList,
	}
}

// desktopViewURL adds the path and query unless told otherwise, so templates
// can call it without arguments.
func (h *Helper) desktopViewURL(addPathAndQuery ...bool) string {
	add := true
	if len(addPathAndQuery) > 0 {
		add = addPathAndQuery[0]
	}
	return h.DesktopViewURL(add)
}
