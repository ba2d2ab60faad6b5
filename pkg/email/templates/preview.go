package templates

import (
	"context"
	"html/template"
	"io"
	"slices"

	"github.com/a-h/templ"
)

var previewTmpl = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.TemplateID}}</title></head>
<body>
<h1>{{.TemplateID}}</h1>
<table>
{{- range .Rows}}
<tr><th>{{.Key}}</th><td>{{.Value}}</td></tr>
{{- end}}
</table>
</body>
</html>
`))

type previewRow struct {
	Key   string
	Value string
}

// Preview lists template params as an HTML table, sorted by key.
func Preview(templateID string, params map[string]string) templ.Component {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows := make([]previewRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, previewRow{Key: k, Value: params[k]})
	}

	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return previewTmpl.Execute(w, struct {
			TemplateID string
			Rows       []previewRow
		}{templateID, rows})
	})
}
