package cookie

import (
	"errors"
	"net/http"
	"time"
)

const (
	// DefaultName is the name of the view cookie.
	DefaultName = "device_view"
	// DefaultExpire is the expiry modifier used when none is set or the
	// configured one cannot be parsed.
	DefaultExpire = "1 month"
)

// Manager writes and reads a single named cookie.
type Manager struct {
	name     string
	defaults Options
	now      func() time.Time
}

func New(name string, opts ...Option) (*Manager, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expire:   DefaultExpire,
	}

	return &Manager{
		name:     name,
		defaults: applyOptions(defaults, opts),
		now:      time.Now,
	}, nil
}

// Name returns the cookie name.
func (m *Manager) Name() string { return m.name }

// Options returns a copy of the manager defaults.
func (m *Manager) Options() Options { return m.defaults }

// Expires resolves the expiry modifier against the current time.
// An invalid modifier falls back to DefaultExpire.
func (m *Manager) Expires() time.Time {
	return resolveExpiry(m.defaults.Expire, m.now())
}

// Cookie builds the cookie carrying value.
func (m *Manager) Cookie(value string, opts ...Option) *http.Cookie {
	options := applyOptions(m.defaults, opts)

	now := m.now()
	expires := resolveExpiry(options.Expire, now)

	maxAge := int(expires.Sub(now).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}

	return &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		Expires:  expires.UTC(),
		MaxAge:   maxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
}

func (m *Manager) Set(w http.ResponseWriter, value string, opts ...Option) {
	http.SetCookie(w, m.Cookie(value, opts...))
}

func (m *Manager) Get(r *http.Request) (string, error) {
	cookie, err := r.Cookie(m.name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

func (m *Manager) Delete(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}
