package useragent

import (
	"regexp"
	"slices"
	"strings"
)

// Browsers reported by Info.Browser.
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
	BrowserIE      = "ie"
	BrowserSamsung = "samsung"
	BrowserUC      = "uc"
	BrowserQQ      = "qq"
	BrowserHuawei  = "huawei"
	BrowserVivo    = "vivo"
	BrowserMIUI    = "miui"
	BrowserBrave   = "brave"
	BrowserVivaldi = "vivaldi"
	BrowserYandex  = "yandex"
	BrowserUnknown = "unknown"
)

type browserRule struct {
	name    string
	any     []string // one of them must be present
	none    []string // none of them may be present
	version *regexp.Regexp
}

func (b browserRule) match(lowerUA string) bool {
	has := func(k string) bool { return strings.Contains(lowerUA, k) }
	return slices.ContainsFunc(b.any, has) && !slices.ContainsFunc(b.none, has)
}

// browsers is ordered: Chromium derivatives carry "chrome" and "safari"
// tokens too, so they go before Chrome, which goes before Safari.
var browsers = []browserRule{
	{BrowserEdge, []string{"edg/", "edge/", "edga/", "edgios/"}, nil, regexp.MustCompile(`(?:edge|edga|edgios|edg)/([\d.]+)`)},
	{BrowserSamsung, []string{"samsungbrowser"}, nil, regexp.MustCompile(`samsungbrowser/([\d.]+)`)},
	{BrowserUC, []string{"ucbrowser"}, nil, regexp.MustCompile(`ucbrowser/([\d.]+)`)},
	{BrowserQQ, []string{"qqbrowser", "mqqbrowser"}, nil, regexp.MustCompile(`qqbrowser/([\d.]+)`)},
	{BrowserHuawei, []string{"huaweibrowser"}, nil, regexp.MustCompile(`huaweibrowser/([\d.]+)`)},
	{BrowserVivo, []string{"vivobrowser"}, nil, regexp.MustCompile(`vivobrowser/([\d.]+)`)},
	{BrowserMIUI, []string{"miuibrowser"}, nil, regexp.MustCompile(`miuibrowser/([\d.]+)`)},
	{BrowserYandex, []string{"yabrowser", "yandexbrowser"}, nil, regexp.MustCompile(`(?:yabrowser|yandexbrowser)/([\d.]+)`)},
	{BrowserVivaldi, []string{"vivaldi"}, nil, regexp.MustCompile(`vivaldi/([\d.]+)`)},
	{BrowserBrave, []string{"brave"}, nil, regexp.MustCompile(`brave/([\d.]+)`)},
	{BrowserOpera, []string{"opr/", "opera", "opios/"}, nil, regexp.MustCompile(`(?:opr|opios|opera)[/ ]([\d.]+)`)},
	{BrowserChrome, []string{"chrome/", "crios/"}, nil, regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`)},
	{BrowserFirefox, []string{"firefox/", "fxios/"}, nil, regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`)},
	{BrowserSafari, []string{"safari"}, []string{"chrome", "crios", "firefox", "fxios"}, regexp.MustCompile(`version/([\d.]+)`)},
	{BrowserIE, []string{"msie", "trident/"}, nil, regexp.MustCompile(`(?:msie |rv:)([\d.]+)`)},
}

var browserDisplayNames = map[string]string{
	BrowserIE:      "Internet Explorer",
	BrowserSamsung: "Samsung Internet",
	BrowserUC:      "UC Browser",
	BrowserQQ:      "QQ Browser",
	BrowserHuawei:  "Huawei Browser",
	BrowserVivo:    "Vivo Browser",
	BrowserMIUI:    "MIUI Browser",
}

// browser returns the browser name and version found in lowerUA.
func browser(lowerUA string) (string, string) {
	for _, b := range browsers {
		if b.match(lowerUA) {
			return b.name, submatch(lowerUA, b.version)
		}
	}
	return BrowserUnknown, ""
}

// submatch returns the first capture group of re in s, capped at 20
// characters.
func submatch(s string, re *regexp.Regexp) string {
	if re == nil {
		return ""
	}
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	v := m[1]
	if len(v) > 20 {
		v = v[:20]
	}
	return v
}
