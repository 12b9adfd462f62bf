// Package collector records the view state of each request for a profiler
// panel.
//
// Collect returns the current view and, for the full (desktop), tablet and
// mobile views, a link that switches to it through the switch parameter. A
// view is marked as disabled when its redirect is enabled towards another
// host, since switching here would bounce the visitor away.
//
// Middleware stores a Profile per request under a random token, returned in
// the X-Debug-Token header. Handler serves the stored profiles:
//
//	c := collector.New(collector.WithRedirectConfig(cfg))
//	r.Group(func(r chi.Router) {
//		r.Use(listener.Middleware, c.Middleware)
//		r.Get("/", home)
//	})
//	r.Mount("/_profiler", c.Handler())
//
// Profiles live in a bounded in-memory LRU (MemoryStore) or in Redis
// (RedisStore) when several instances share the panel.
package collector
