package deviceview

import (
	"net/http"
	"strings"
)

// View is the device category a response is rendered for.
type View string

const (
	ViewMobile    View = "mobile"
	ViewTablet    View = "tablet"
	ViewDesktop   View = "desktop"
	ViewNotMobile View = "not_mobile"

	// viewFullAlias is accepted on input as a synonym of ViewDesktop.
	viewFullAlias = "full"
)

// ParseView converts s to a View. "full" is accepted as ViewDesktop.
func ParseView(s string) (View, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ViewMobile):
		return ViewMobile, true
	case string(ViewTablet):
		return ViewTablet, true
	case string(ViewDesktop), viewFullAlias:
		return ViewDesktop, true
	case string(ViewNotMobile):
		return ViewNotMobile, true
	}
	return "", false
}

func (v View) String() string { return string(v) }

// Action tells the listener how to redirect to a view hosted elsewhere.
type Action string

const (
	// ActionRedirect keeps the path and query of the current request.
	ActionRedirect Action = "redirect"
	// ActionRedirectWithoutPath sends the visitor to the host root.
	ActionRedirectWithoutPath Action = "redirect_without_path"
	// ActionNoRedirect disables the redirect.
	ActionNoRedirect Action = "no_redirect"
)

// ParseAction converts s to an Action.
func ParseAction(s string) (Action, bool) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionRedirect, ActionRedirectWithoutPath, ActionNoRedirect:
		return a, true
	}
	return "", false
}

// RedirectRule configures the redirect to the host serving one view.
type RedirectRule struct {
	Enabled    bool
	Host       string // absolute URL, e.g. "http://m.example.com"
	StatusCode int
	Action     Action
}

// RedirectConfig holds the per-view redirect rules. A nil rule means the view
// is never redirected to.
type RedirectConfig struct {
	Mobile               *RedirectRule
	Tablet               *RedirectRule
	Desktop              *RedirectRule
	DetectTabletAsMobile bool
}

// Rule returns the rule for view, or nil.
func (c RedirectConfig) Rule(view View) *RedirectRule {
	switch view {
	case ViewMobile:
		return c.Mobile
	case ViewTablet:
		return c.Tablet
	case ViewDesktop:
		return c.Desktop
	}
	return nil
}

// StatusCode returns the redirect status for view, http.StatusFound when the
// rule is missing or has no status set.
func (c RedirectConfig) StatusCode(view View) int {
	if rule := c.Rule(view); rule != nil && rule.StatusCode != 0 {
		return rule.StatusCode
	}
	return http.StatusFound
}
