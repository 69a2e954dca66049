package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// HTMLRenderer keeps a separate template set per page, each sharing the base
// layout, so pages cannot collide on block names.
type HTMLRenderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*HTMLRenderer, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"home", "product", "cart", "receipt", "error"} {
		t, err := template.ParseFS(templatesFS, "templates/base.tmpl", "templates/"+name+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", name, err)
		}
		pages[name] = t
	}
	return &HTMLRenderer{pages: pages}, nil
}

// Instance satisfies gin's render.HTMLRender.
func (r *HTMLRenderer) Instance(name string, data interface{}) render.Render {
	return render.HTML{
		Template: r.pages[name],
		Data:     data,
	}
}
