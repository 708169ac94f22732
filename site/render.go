// SPDX-License-Identifier: GPL-3.0-only

package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"mineeast-server/models"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

const dateLayout = "Jan 2, 2006, 03:04 PM"

var funcs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.UTC().Format(dateLayout)
	},
	"orDefault": func(value *string, fallback string) string {
		if value == nil || *value == "" {
			return fallback
		}
		return *value
	},
	"percent": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	},
	"rfc3339": func(t time.Time) string {
		return t.UTC().Format(time.RFC3339)
	},
	"unknownCountry": func() string { return models.UnknownCountry },
}

// Renderer executes the embedded page templates for echo.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("site").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse site templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
