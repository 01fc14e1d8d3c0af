package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/bistrohq/bistro-web/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"currency": utils.FormatCurrency,
	"date":     utils.FormatDate,
}).ParseFS(templateFS, "templates/*.html"))

// Templates exposes the parsed set for the gin engine, so pages and
// fragments render from the same definitions.
func Templates() *template.Template {
	return templates
}

func render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
