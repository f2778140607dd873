package view

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templates embed.FS

// PageTemplate is the name the storefront page is registered under.
const PageTemplate = "page.html"

var pageTemplate = template.Must(template.ParseFS(templates, "templates/*.html"))

// Template returns the parsed storefront templates, ready for
// gin.Engine.SetHTMLTemplate.
func Template() *template.Template {
	return pageTemplate
}

func RenderHTML(w io.Writer, page PageView) error {
	return pageTemplate.ExecuteTemplate(w, PageTemplate, page)
}
