package collector

import (
	"context"
	"time"
)

// Profile is the record stored for one request.
type Profile struct {
	Token      string        `json:"token"`
	RequestID  string        `json:"request_id,omitempty"`
	Time       time.Time     `json:"time"`
	Duration   time.Duration `json:"duration"`
	Method     string        `json:"method"`
	URL        string        `json:"url"`
	StatusCode int           `json:"status_code"`
	UserAgent  string        `json:"user_agent"`
	Device     string        `json:"device,omitempty"`
	Data       Data          `json:"data"`
}

// Store persists profiles.
type Store interface {
	Save(ctx context.Context, p Profile) error
	Get(ctx context.Context, token string) (Profile, error)
	// List returns up to limit profiles, newest first.
	List(ctx context.Context, limit int) ([]Profile, error)
}
