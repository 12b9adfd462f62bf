// Package cookie manages the single cookie that remembers a visitor's device
// view between requests.
//
// A Manager is bound to one cookie name and a set of default Options (path,
// domain, Secure, HttpOnly, SameSite and an expiry modifier). The expiry is
// written the way people say it, "1 month" or "+2 weeks", and is resolved
// against the clock every time a cookie is built, so long-running processes
// never hand out stale expiry dates.
//
// # Usage
//
//	import "github.com/dmitrymomot/mobiledetect/pkg/cookie"
//
//	man, err := cookie.New("device_view", cookie.WithExpire("1 year"))
//	if err != nil { log.Fatal(err) }
//
//	man.Set(w, "mobile")
//	view, err := man.Get(r)
//
// # Configuration
//
// Config can be filled from the environment via github.com/caarlos0/env:
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	man, _ := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Get returns ErrCookieNotFound when the cookie is absent. ParseExpiry
// returns ErrInvalidExpiry for modifiers it cannot read; the Manager itself
// never fails on a bad modifier and uses DefaultExpire instead.
package cookie
