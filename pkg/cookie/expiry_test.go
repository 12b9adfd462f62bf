package cookie_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mobiledetect/pkg/cookie"
)

func TestParseExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 31, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		modifier string
		want     time.Time
	}{
		{"now", now},
		{"today", time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{"1 month", now.AddDate(0, 1, 0)},
		{"+1 months", now.AddDate(0, 1, 0)},
		{"  1 Month  ", now.AddDate(0, 1, 0)},
		{"2 weeks", now.AddDate(0, 0, 14)},
		{"1 fortnight", now.AddDate(0, 0, 14)},
		{"-1 day", now.AddDate(0, 0, -1)},
		{"1 year 2 days", now.AddDate(1, 0, 2)},
		{"3 hours 15 min", now.Add(3*time.Hour + 15*time.Minute)},
		{"30 seconds", now.Add(30 * time.Second)},
		{"720h", now.Add(720 * time.Hour)},
	}

	for _, tc := range tests {
		t.Run(tc.modifier, func(t *testing.T) {
			t.Parallel()
			got, err := cookie.ParseExpiry(tc.modifier, now)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestParseExpiry_Invalid(t *testing.T) {
	t.Parallel()

	now := time.Now()
	for _, modifier := range []string{"", "soon", "1 lightyear", "month 1", "1 month and then some", "++1 day"} {
		t.Run(modifier, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.ParseExpiry(modifier, now)
			assert.ErrorIs(t, err, cookie.ErrInvalidExpiry)
		})
	}
}
