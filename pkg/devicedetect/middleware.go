package devicedetect

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
	"github.com/dmitrymomot/mobiledetect/pkg/logger"
)

// Span attribute keys set by the middleware.
const (
	AttrView          = attribute.Key("device.view")
	AttrRequestedView = attribute.Key("device.view.requested")
	AttrRedirect      = attribute.Key("device.redirect")
)

// Middleware runs the listener for every request. Redirects are answered
// directly. Otherwise the DeviceView and the detected device are stored in
// the request context and, when needed, the view cookie is added to the
// response before its header is written, or after the handler returns if it
// wrote nothing.
func (l *Listener) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := l.HandleRequest(r)

		span := trace.SpanFromContext(r.Context())
		span.SetAttributes(
			AttrView.String(string(res.View.View())),
			AttrRequestedView.String(string(res.View.RequestedView())),
			AttrRedirect.Bool(res.Response != nil),
		)

		ctx := deviceview.WithContext(r.Context(), res.View)
		ctx = WithDevice(ctx, res.Device)
		r = r.WithContext(ctx)

		if res.Response != nil {
			if err := res.Response.Render(w, r); err != nil {
				l.logger.ErrorContext(ctx, "failed to render redirect", logger.Error(err))
			}
			return
		}

		if !res.ModifyResponse {
			next.ServeHTTP(w, r)
			return
		}

		cw := &cookieWriter{ResponseWriter: w, dv: res.View, view: res.View.View()}
		next.ServeHTTP(cw, r)
		// Handlers that write nothing leave the header to net/http.
		cw.setCookie()
	})
}

// cookieWriter adds the view cookie right before the header is written.
type cookieWriter struct {
	http.ResponseWriter
	dv      *deviceview.DeviceView
	view    deviceview.View
	written bool
}

func (cw *cookieWriter) setCookie() {
	if cw.written {
		return
	}
	cw.written = true
	cw.dv.ModifyResponse(cw.ResponseWriter, cw.view)
}

func (cw *cookieWriter) WriteHeader(code int) {
	cw.setCookie()
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cookieWriter) Write(b []byte) (int, error) {
	cw.setCookie()
	return cw.ResponseWriter.Write(b)
}

func (cw *cookieWriter) Flush() {
	cw.setCookie()
	if f, ok := cw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (cw *cookieWriter) Unwrap() http.ResponseWriter { return cw.ResponseWriter }
