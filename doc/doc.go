// Package doc wraps rendered staff text in a small HTML document so the
// unicode music glyphs display with a browser's font fallback.
package doc

import (
	"embed"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("doc").
	Funcs(sprig.TxtFuncMap()).
	ParseFS(templateFS, "templates/*.tmpl"))

type document struct {
	Title string
	Staff string
}

// WrapHTML writes the staff text as an HTML page. The page title is the
// given name, typically the input file's base name, in title case.
func WrapHTML(w io.Writer, name, staffText string) error {
	title := cases.Title(language.English).String(name)
	return templates.ExecuteTemplate(w, "staff.html.tmpl", document{Title: title, Staff: staffText})
}
