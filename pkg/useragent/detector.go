package useragent

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Version property names understood by Device.Version.
const (
	PropertyIOS          = "iOS"
	PropertyAndroid      = "Android"
	PropertyChrome       = "Chrome"
	PropertyFirefox      = "Firefox"
	PropertySafari       = "Safari"
	PropertyEdge         = "Edge"
	PropertyOpera        = "Opera"
	PropertyWindowsNT    = "Windows NT"
	PropertyWindowsPhone = "Windows Phone OS"
)

// versionPatterns maps lower-cased property names to the expression that
// captures their version. Underscores in captured versions (iOS) are
// normalised to dots.
var versionPatterns = map[string]*regexp.Regexp{
	"ios":              regexp.MustCompile(`(?i)(?:iphone|cpu) os ([\d_]+)`),
	"android":          regexp.MustCompile(`(?i)android ([\d.]+)`),
	"chrome":           regexp.MustCompile(`(?i)(?:chrome|crios)/([\d.]+)`),
	"firefox":          regexp.MustCompile(`(?i)(?:firefox|fxios)/([\d.]+)`),
	"safari":           regexp.MustCompile(`(?i)version/([\d.]+)`),
	"edge":             regexp.MustCompile(`(?i)(?:edge|edg|edga|edgios)/([\d.]+)`),
	"opera":            regexp.MustCompile(`(?i)(?:opr|opera)[/ ]([\d.]+)`),
	"windows nt":       regexp.MustCompile(`(?i)windows nt ([\d.]+)`),
	"windows phone os": regexp.MustCompile(`(?i)windows phone(?: os)? ([\d.]+)`),
}

// Detector classifies user agents. The zero value is ready to use.
type Detector struct {
	extra map[string][]string
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithRule registers an additional keyword rule for Device.Is.
// Keywords are matched case-insensitively as substrings of the user agent.
func WithRule(name string, keywords ...string) DetectorOption {
	return func(d *Detector) {
		if name == "" || len(keywords) == 0 {
			return
		}
		lowered := make([]string, 0, len(keywords))
		for _, k := range keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				lowered = append(lowered, k)
			}
		}
		d.extra[strings.ToLower(name)] = append(d.extra[strings.ToLower(name)], lowered...)
	}
}

// NewDetector returns a Detector with the built-in rules plus any extra ones.
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{extra: make(map[string][]string)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect parses the user agent. Parse errors are not fatal: an empty or
// unrecognised user agent yields a Device that is neither mobile nor tablet.
func (d *Detector) Detect(userAgent string) Device {
	info, _ := Parse(userAgent)
	var extra map[string][]string
	if d != nil {
		extra = d.extra
	}
	return Device{info: info, lower: strings.ToLower(userAgent), extra: extra}
}

// Rules returns the keyword rules used for classification, grouped by name.
func (d *Detector) Rules() map[string][]string {
	rules := builtinRules()
	if d != nil {
		for name, keywords := range d.extra {
			merged := append(slices.Clone(rules[name]), keywords...)
			slices.Sort(merged)
			rules[name] = slices.Compact(merged)
		}
	}
	return rules
}

// Device is the detection result for a single user agent.
type Device struct {
	info  Info
	lower string
	extra map[string][]string
}

// Info returns the parsed user agent.
func (d Device) Info() Info { return d.info }

// Label describes the device for logs, see Info.Label.
func (d Device) Label() string { return d.info.Label() }

// IsMobile reports whether the device is a handheld. Tablets count as mobile
// devices, use IsTablet to tell them apart.
func (d Device) IsMobile() bool { return d.info.Class == ClassMobile || d.info.Class == ClassTablet }

// IsTablet reports whether the device is a tablet.
func (d Device) IsTablet() bool { return d.info.Class == ClassTablet }

// IsBot reports whether the agent is a crawler or another automated client.
func (d Device) IsBot() bool { return d.info.Class == ClassBot }

// IsIOS reports whether the device runs iOS.
func (d Device) IsIOS() bool { return d.info.OS == OSiOS }

// IsAndroidOS reports whether the device runs Android.
func (d Device) IsAndroidOS() bool { return d.info.OS == OSAndroid }

// IsWindowsOS reports whether the device runs a mobile Windows flavour.
func (d Device) IsWindowsOS() bool {
	return d.info.OS == OSWindowsPhone || d.info.OS == OSWindowsMobile
}

// Is checks the device against a named rule, model, OS or browser, e.g.
// "iphone", "samsung", "kindle", "android" or "chrome". Names that are none
// of these never match.
func (d Device) Is(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || d.lower == "" {
		return false
	}

	if d.info.Model == name || d.info.OS == name || d.info.Browser == name {
		return true
	}

	if keywords, ok := d.extra[name]; ok && matchAny(d.lower, keywords) {
		return true
	}

	keywords, ok := knownRules()[name]
	return ok && matchAny(d.lower, keywords)
}

// knownRules is read-only, Rules hands out fresh copies.
var knownRules = sync.OnceValue(builtinRules)

func matchAny(lowerUA string, keywords []string) bool {
	return slices.ContainsFunc(keywords, func(k string) bool {
		return strings.Contains(lowerUA, k)
	})
}

// Version extracts the version of a property such as "iOS", "Android" or
// "Chrome". Unknown properties fall back to a "<property>/<version>" lookup.
// It returns an empty string when no version is found.
func (d Device) Version(property string) string {
	key := strings.ToLower(strings.TrimSpace(property))
	if key == "" || d.lower == "" {
		return ""
	}

	re, ok := versionPatterns[key]
	if !ok {
		re = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(key) + `[/ ]v?([\d._]+)`)
	}

	return strings.ReplaceAll(submatch(d.lower, re), "_", ".")
}

// VersionFloat returns the version as a float using its major and minor
// parts. It returns 0 when no version is found.
func (d Device) VersionFloat(property string) float64 {
	v := shortVersion(d.Version(property))
	if v == "" {
		return 0
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
