package deviceview

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	dataStarAcceptHeader = "text/event-stream"
	dataStarQueryParam   = "datastar"
)

// RedirectResponse is a redirect that also stores the view cookie.
type RedirectResponse struct {
	URL        string
	StatusCode int
	Cookie     *http.Cookie
}

// Render writes the cookie and the redirect. DataStar requests get an SSE
// redirect event instead of a Location header, since the browser does not
// follow redirects on event streams.
func (resp *RedirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if resp.Cookie != nil {
		http.SetCookie(w, resp.Cookie)
	}

	if isDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.Redirect(resp.URL)
	}

	code := resp.StatusCode
	if code == 0 {
		code = http.StatusFound
	}
	http.Redirect(w, r, resp.URL, code)
	return nil
}

// ServeHTTP implements http.Handler.
func (resp *RedirectResponse) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = resp.Render(w, r)
}

func isDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), dataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(dataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}
