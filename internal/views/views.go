// Package views holds the server-rendered pages. Templates are embedded so the
// binary and the tests need no files on disk.
package views

import (
	"embed"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var files embed.FS

// Page names as registered with gin's HTML renderer.
const (
	MainHome      = "main-home.tmpl"
	OrganiserHome = "organiser-home.tmpl"
	EditEvent     = "edit-event.tmpl"
	SiteSettings  = "site-settings.tmpl"
	AttendeeHome  = "attendee-home.tmpl"
)

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"stamp": func(layout string, t interface{ Format(string) string }) string { return t.Format(layout) },
}

func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.tmpl")
}

func MustLoad() *template.Template {
	return template.Must(Load())
}
