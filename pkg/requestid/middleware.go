package requestid

import (
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	Header = "X-Request-ID"

	// AttrRequestID is the span attribute carrying the request ID.
	AttrRequestID = attribute.Key("http.request.id")

	maxLength = 128
)

// Middleware reuses a well-formed incoming X-Request-ID or generates a new
// one. The ID is echoed in the response, stored in the request context and
// set on the current span.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !Valid(id) {
			id = uuid.NewString()
		}

		w.Header().Set(Header, id)
		trace.SpanFromContext(r.Context()).SetAttributes(AttrRequestID.String(id))

		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// Valid reports whether id is 1 to 128 characters of letters, digits, '-'
// and '_'.
func Valid(id string) bool {
	if id == "" || len(id) > maxLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
