package web

import (
	"bytes"
	"embed"
	"html/template"

	"calpages/internal/adapters/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/event_types.html"))

func renderPage(p view.Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "event_types.html", p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
