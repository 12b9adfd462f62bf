package useragent

import "strings"

// Info is what Parse extracts from a user agent.
type Info struct {
	Raw            string
	Class          Class
	Model          string // phones and tablets only
	OS             string
	Browser        string
	BrowserVersion string
}

// Parse classifies a user agent. The returned Info is always usable: on
// ErrEmptyUserAgent or ErrUnknownDevice its Class is ClassUnknown.
func Parse(userAgent string) (Info, error) {
	lower := strings.ToLower(userAgent)
	info := Info{
		Raw:   userAgent,
		Class: classify(lower),
		OS:    platform(lower),
	}
	info.Model = model(lower, info.Class)
	info.Browser, info.BrowserVersion = browser(lower)

	switch {
	case userAgent == "":
		return info, ErrEmptyUserAgent
	case info.Class == ClassUnknown:
		return info, ErrUnknownDevice
	}
	return info, nil
}
