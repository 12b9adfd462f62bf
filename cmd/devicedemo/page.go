package main

import (
	"context"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mobiledetect"
	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
	"github.com/dmitrymomot/mobiledetect/pkg/logger"
	"github.com/dmitrymomot/mobiledetect/pkg/useragent"
	"github.com/dmitrymomot/mobiledetect/pkg/viewhelper"
)

const pageSource = `<!doctype html>
<html>
<head><title>{{ .Title }}</title></head>
<body>
{{ if isMobileView }}<h1>Mobile</h1>{{ else if isTabletView }}<h1>Tablet</h1>{{ else }}<h1>Desktop</h1>{{ end }}
<p>Path: {{ .Path }}</p>
<ul>
<li>mobile device: {{ isMobile }}</li>
<li>tablet device: {{ isTablet }}</li>
<li>iOS: {{ isIOS }} {{ with deviceVersion "iOS" }}({{ . }}){{ end }}</li>
<li>Android: {{ isAndroidOS }} {{ with deviceVersion "Android" }}({{ . }}){{ end }}</li>
<li>Windows: {{ isWindowsOS }}</li>
<li>iPhone: {{ isDevice "iphone" }}</li>
</ul>
{{ if not isDesktopView }}<a href="{{ desktopViewURL }}">Desktop version</a>{{ end }}
</body>
</html>`

// pageTemplate is parsed against a helper without a request; the request
// helper is bound on a clone before every render.
var pageTemplate = template.Must(template.New("page").Funcs(
	viewhelper.New(useragent.Device{}, nil, deviceview.RedirectConfig{}, nil).FuncMap(),
).Parse(pageSource))

type pageData struct {
	Title string
	Path  string
}

// page renders the demo page through the request helper.
func page(h *viewhelper.Helper, data pageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		t, err := pageTemplate.Clone()
		if err != nil {
			return err
		}
		return t.Funcs(h.FuncMap()).Execute(w, data)
	})
}

func pageHandler(b *mobiledetect.Bundle, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := pageData{Title: "mobiledetect demo", Path: r.URL.Path}
		if err := page(b.Helper(r), data).Render(r.Context(), w); err != nil {
			log.ErrorContext(r.Context(), "failed to render page", logger.Error(err))
		}
	}
}
