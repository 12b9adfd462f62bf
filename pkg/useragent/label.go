package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var knownBots = []rule{
	{"Googlebot", []string{"googlebot"}},
	{"AdsBot", []string{"adsbot"}},
	{"Bingbot", []string{"bingbot"}},
	{"YandexBot", []string{"yandexbot"}},
	{"Baiduspider", []string{"baiduspider"}},
	{"Twitterbot", []string{"twitterbot"}},
	{"Facebook", []string{"facebookexternalhit", "facebookbot"}},
	{"LinkedInBot", []string{"linkedinbot"}},
	{"Slackbot", []string{"slackbot"}},
	{"TelegramBot", []string{"telegrambot"}},
}

var botNamePattern = regexp.MustCompile(`[a-z0-9_-]+(?:bot|spider|crawler)|google-structured-data`)

// Label is a short human-readable description of the agent for logs and the
// profiler, e.g. "Chrome 91.0 on Android (mobile)" or "Googlebot (bot)".
func (i Info) Label() string {
	lower := strings.ToLower(i.Raw)

	if i.Class == ClassBot {
		return botName(lower) + " (bot)"
	}

	known := func(s string) bool { return s != "" && s != OSUnknown }
	if !known(i.Browser) && !known(i.OS) && i.Class == ClassUnknown {
		return "Unknown device"
	}

	var b strings.Builder
	if known(i.Browser) {
		b.WriteString(displayName(i.Browser, browserDisplayNames))
		if v := shortVersion(i.BrowserVersion); v != "" {
			b.WriteString(" " + v)
		}
	} else {
		b.WriteString("Unknown browser")
	}
	if known(i.OS) {
		b.WriteString(" on " + displayName(i.OS, osDisplayNames))
	}
	if i.Class != ClassUnknown {
		b.WriteString(" (" + i.Class.String() + ")")
	}
	return b.String()
}

func botName(lowerUA string) string {
	if name := firstMatch(lowerUA, knownBots); name != "" {
		return name
	}
	if m := botNamePattern.FindString(lowerUA); m != "" {
		return titleCase(m)
	}
	return "Unknown bot"
}

func displayName(name string, overrides map[string]string) string {
	if d, ok := overrides[name]; ok {
		return d
	}
	return titleCase(name)
}

// shortVersion keeps the major and minor parts: "91.0.4472.124" is "91.0".
func shortVersion(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) > 2 {
		return parts[0] + "." + parts[1]
	}
	return strings.TrimSuffix(v, ".")
}

// titleCase builds a caser per call, casers keep state between calls.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
