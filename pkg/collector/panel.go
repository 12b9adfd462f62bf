package collector

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

const panelSource = `<section class="device-collector">
<h2>Device</h2>
<p class="request">{{ .Method }} {{ .URL }} <span class="status">{{ .StatusCode }}</span></p>
<p class="user-agent">{{ .UserAgent }}</p>
{{- with .Device }}
<p class="device">{{ . }}</p>
{{- end }}
{{- with .RequestID }}
<p class="request-id">Request ID: {{ . }}</p>
{{- end }}
<p>Current view: <strong class="current-view">{{ with .Data.CurrentView }}{{ . }}{{ else }}none{{ end }}</strong></p>
<table>
<thead><tr><th>View</th><th>Switch</th></tr></thead>
<tbody>
{{- range .Data.Views }}
<tr class="view{{ if .IsCurrent }} current{{ end }}"><td>{{ .Label }}</td><td>
{{- if not .Enabled }}<span class="disabled">served on another host</span>
{{- else if not .IsCurrent }}<a href="{{ .Link }}">Switch to {{ .Label }}</a>
{{- end }}</td></tr>
{{- end }}
</tbody>
</table>
</section>`

var panelTemplate = template.Must(template.New("panel").Parse(panelSource))

// Panel renders a profile as an HTML fragment.
func Panel(p Profile) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return panelTemplate.Execute(w, p)
	})
}
