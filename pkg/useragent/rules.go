package useragent

import (
	"slices"
	"strings"
)

// rule is a named group of lower-case keywords matched as substrings.
type rule struct {
	name     string
	keywords []string
}

func (r rule) match(lowerUA string) bool {
	return slices.ContainsFunc(r.keywords, func(k string) bool {
		return strings.Contains(lowerUA, k)
	})
}

// firstMatch returns the name of the first rule matching lowerUA, or "".
func firstMatch(lowerUA string, rules []rule) string {
	for _, r := range rules {
		if r.match(lowerUA) {
			return r.name
		}
	}
	return ""
}

// builtinRules groups the keywords of every table by name, the way
// Detector.Rules reports them.
func builtinRules() map[string][]string {
	out := make(map[string][]string)
	add := func(rules ...rule) {
		for _, r := range rules {
			if r.name == "" || len(r.keywords) == 0 {
				continue
			}
			out[r.name] = append(out[r.name], r.keywords...)
		}
	}

	add(botRule, tabletRule, mobileRule, tvRule, consoleRule, desktopRule)
	add(phoneModels...)
	add(tabletModels...)
	add(platforms...)

	for name, keywords := range out {
		slices.Sort(keywords)
		out[name] = slices.Compact(keywords)
	}
	return out
}
