package travelMap

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/map.html
var templateFS embed.FS

// Renderer writes a MapView as a standalone HTML page.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/map.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse map template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, view MapView) error {
	if err := r.tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}
	return nil
}
