// Package web embeds the HTML templates and static assets of the portfolio pages.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/guttosm/portfolio-service/internal/domain/model"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

// funcs expose typed views of a localized item to the templates.
var funcs = template.FuncMap{
	"experience": func(c model.Content) *model.Experience {
		e, _ := c.(*model.Experience)
		return e
	},
	"project": func(c model.Content) *model.MyProject {
		p, _ := c.(*model.MyProject)
		return p
	},
	"technology": func(c model.Content) *model.Technology {
		t, _ := c.(*model.Technology)
		return t
	},
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// Static returns the embedded assets rooted at static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
