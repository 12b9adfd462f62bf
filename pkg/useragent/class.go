package useragent

import "strings"

// Class is the device category of a user agent.
type Class string

const (
	ClassDesktop Class = "desktop"
	ClassMobile  Class = "mobile"
	ClassTablet  Class = "tablet"
	ClassTV      Class = "tv"
	ClassConsole Class = "console"
	ClassBot     Class = "bot"
	ClassUnknown Class = "unknown"
)

func (c Class) String() string { return string(c) }

var (
	botRule = rule{string(ClassBot), []string{
		"bot", "spider", "crawler", "archiver", "ping", "lighthouse", "slurp", "daum", "sogou", "yeti",
		"facebook", "twitter", "slack", "linkedin", "whatsapp", "telegram", "discord", "camo asset",
		"generator", "monitor", "analyzer", "validator", "fetcher", "scraper", "check",
	}}
	tabletRule = rule{string(ClassTablet), []string{
		"tablet", "kindle", "silk", "playbook", "nexus 7", "nexus 9", "nexus 10", "xoom",
	}}
	mobileRule = rule{string(ClassMobile), []string{
		"mobile", "iphone", "ipod", "android", "windows phone", "windows ce", "iemobile",
		"blackberry", "bb10", "nokia", "opera mini", "palm",
	}}
	tvRule      = rule{string(ClassTV), []string{"tv", "appletv", "smarttv", "googletv", "android tv", "webos", "tizen"}}
	consoleRule = rule{string(ClassConsole), []string{"playstation", "xbox", "nintendo", "wiiu", "switch"}}
	desktopRule = rule{string(ClassDesktop), []string{
		"windows", "macintosh", "mac os x", "linux", "x11", "ubuntu", "fedora", "debian", "chromeos", "cros",
	}}
)

// classify works on the lower-cased user agent. Apple devices name
// themselves unambiguously and go first. Android tablets are told apart from
// phones by a tablet keyword (Kindle agents say "Mobile Safari") or by the
// missing "mobile" token.
func classify(lowerUA string) Class {
	switch {
	case lowerUA == "":
		return ClassUnknown
	case strings.Contains(lowerUA, "ipad"):
		return ClassTablet
	case strings.Contains(lowerUA, "iphone"):
		return ClassMobile
	case botRule.match(lowerUA):
		return ClassBot
	case strings.Contains(lowerUA, "android"):
		if tabletRule.match(lowerUA) || !strings.Contains(lowerUA, "mobile") {
			return ClassTablet
		}
		return ClassMobile
	case tabletRule.match(lowerUA):
		return ClassTablet
	case mobileRule.match(lowerUA):
		return ClassMobile
	case tvRule.match(lowerUA):
		return ClassTV
	case consoleRule.match(lowerUA):
		return ClassConsole
	case isWindowsTouch(lowerUA):
		return ClassTablet
	case desktopRule.match(lowerUA):
		return ClassDesktop
	}
	return ClassUnknown
}

func isWindowsTouch(lowerUA string) bool {
	return strings.Contains(lowerUA, "windows") &&
		(strings.Contains(lowerUA, "touch") || strings.Contains(lowerUA, "tablet"))
}
