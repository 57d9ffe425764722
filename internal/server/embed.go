package server

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kohinoor-interiors/showroom/webui"
)

// templateFuncs are available to every page.
var templateFuncs = template.FuncMap{
	"stars": func(n int) string { return strings.Repeat("★", n) },
	"add":   func(a, b int) int { return a + b },
}

// loadTemplates parses every page and partial from the embedded FS.
func loadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(webui.FS, "web/templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// RegisterStaticFiles mounts the embedded assets under /static.
func RegisterStaticFiles(r *gin.Engine) error {
	staticFS, err := fs.Sub(webui.FS, "web/static")
	if err != nil {
		return fmt.Errorf("embed: web/static sub-fs failed: %w", err)
	}
	r.StaticFS("/static", http.FS(staticFS))
	return nil
}
