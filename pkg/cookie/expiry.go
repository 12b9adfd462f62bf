package cookie

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var expiryTermRe = regexp.MustCompile(`([+-]?)\s*(\d+)\s*([a-z]+)\s*`)

// ParseExpiry resolves a relative date modifier against now.
//
// Accepted forms:
//   - "now", "today" (midnight), "tomorrow" (next midnight)
//   - one or more "[+|-]N unit" terms: "1 month", "+2 weeks", "1 year 2 days", "-1 day"
//   - Go durations: "720h", "90m"
//
// Units are sec, min, hour, day, week, fortnight, month and year, in
// singular or plural. Anything else returns ErrInvalidExpiry.
func ParseExpiry(modifier string, now time.Time) (time.Time, error) {
	m := strings.ToLower(strings.TrimSpace(modifier))

	switch m {
	case "":
		return time.Time{}, fmt.Errorf("%w: empty modifier", ErrInvalidExpiry)
	case "now":
		return now, nil
	case "today", "midnight":
		return truncateDay(now), nil
	case "tomorrow":
		return truncateDay(now).AddDate(0, 0, 1), nil
	}

	if d, err := time.ParseDuration(m); err == nil {
		return now.Add(d), nil
	}

	matches := expiryTermRe.FindAllStringSubmatchIndex(m, -1)
	if len(matches) == 0 || matches[0][0] != 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidExpiry, modifier)
	}

	result := now
	end := 0
	for _, idx := range matches {
		if idx[0] != end {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidExpiry, modifier)
		}
		end = idx[1]

		n, err := strconv.Atoi(m[idx[4]:idx[5]])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidExpiry, modifier)
		}
		if m[idx[2]:idx[3]] == "-" {
			n = -n
		}

		result, err = addUnit(result, n, m[idx[6]:idx[7]])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", err, modifier)
		}
	}
	if end != len(m) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidExpiry, modifier)
	}

	return result, nil
}

func addUnit(t time.Time, n int, unit string) (time.Time, error) {
	switch strings.TrimSuffix(unit, "s") {
	case "sec", "second":
		return t.Add(time.Duration(n) * time.Second), nil
	case "min", "minute":
		return t.Add(time.Duration(n) * time.Minute), nil
	case "hour":
		return t.Add(time.Duration(n) * time.Hour), nil
	case "day":
		return t.AddDate(0, 0, n), nil
	case "week":
		return t.AddDate(0, 0, 7*n), nil
	case "fortnight":
		return t.AddDate(0, 0, 14*n), nil
	case "month":
		return t.AddDate(0, n, 0), nil
	case "year":
		return t.AddDate(n, 0, 0), nil
	}
	return time.Time{}, ErrInvalidExpiry
}

func truncateDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

// resolveExpiry is ParseExpiry with the DefaultExpire fallback.
func resolveExpiry(modifier string, now time.Time) time.Time {
	if t, err := ParseExpiry(modifier, now); err == nil {
		return t
	}
	t, _ := ParseExpiry(DefaultExpire, now)
	return t
}
