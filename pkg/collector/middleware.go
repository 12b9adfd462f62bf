package collector

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mobiledetect/pkg/devicedetect"
	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
	"github.com/dmitrymomot/mobiledetect/pkg/logger"
	"github.com/dmitrymomot/mobiledetect/pkg/requestid"
)

// TokenHeader carries the profile token of a response.
const TokenHeader = "X-Debug-Token"

type tokenKey struct{}

// TokenFromContext returns the profile token of the current request.
func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Middleware records a profile for every request. It reads the DeviceView
// from the request context, so it must be mounted inside the devicedetect
// middleware. Store errors are logged and never fail the request.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := uuid.NewString()
		w.Header().Set(TokenHeader, token)

		sw := &statusWriter{ResponseWriter: w}
		r = r.WithContext(context.WithValue(r.Context(), tokenKey{}, token))
		start := time.Now()

		next.ServeHTTP(sw, r)

		profile := Profile{
			Token:      token,
			RequestID:  requestid.FromContext(r.Context()),
			Time:       start,
			Method:     r.Method,
			URL:        deviceview.SchemeAndHost(r, false) + r.URL.RequestURI(),
			Duration:   time.Since(start),
			StatusCode: sw.code(),
			UserAgent:  r.UserAgent(),
			Data:       c.Collect(r, deviceview.FromContext(r.Context())),
		}
		if dev, ok := devicedetect.DeviceFromContext(r.Context()); ok {
			profile.Device = dev.Label()
		}

		ctx := context.WithoutCancel(r.Context())
		if err := c.store.Save(ctx, profile); err != nil {
			c.logger.ErrorContext(ctx, "failed to save profile",
				logger.ProfileToken(token),
				logger.Error(err),
			)
			return
		}
		c.logger.DebugContext(ctx, "profile saved",
			logger.ProfileToken(token),
			logger.StatusCode(profile.StatusCode),
			logger.Duration(profile.Duration),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.status == 0 {
		sw.status = code
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	return sw.ResponseWriter.Write(b)
}

func (sw *statusWriter) Unwrap() http.ResponseWriter { return sw.ResponseWriter }

func (sw *statusWriter) code() int {
	if sw.status == 0 {
		return http.StatusOK
	}
	return sw.status
}
