package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"todolist/internal/domains/task/model/dto"
)

const (
	indexTemplate = "index.html"

	// EmptyIndicator is shown when there is no task to list.
	EmptyIndicator = "No hay tareas"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Renderer interface {
	Index(w io.Writer, tasks dto.GetTasksResponse) error
}

type renderer struct {
	templates *template.Template
}

func New() (Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &renderer{templates: templates}, nil
}

// Index renders the listing page. The page is rendered to a buffer first so
// a template error never leaves a half-written response.
func (r *renderer) Index(w io.Writer, tasks dto.GetTasksResponse) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, indexTemplate, tasks); err != nil {
		return fmt.Errorf("rendering %s: %w", indexTemplate, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s: %w", indexTemplate, err)
	}

	return nil
}
