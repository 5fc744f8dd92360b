// Package web renders the server-side HTML pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"edu_hub/internal/common/security"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page is what every template receives.
type Page struct {
	Title   string
	Flashes []security.Flash
	Data    any
}

type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"fmtTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04:05")
	},
	"pct": func(f float64) string { return fmt.Sprintf("%.1f%%", f) },
	"num": func(f float64) string { return fmt.Sprintf("%.1f", f) },
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the named page into a buffer first so a template error
// never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
