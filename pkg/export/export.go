// Package export writes a project's analysis to files. The markdown path
// is self-contained; the paginated path delegates to an external renderer.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/pestle/pkg/entry"
	"tableflip.dev/pestle/pkg/project"
	"tableflip.dev/pestle/pkg/report"
)

// PageRenderer converts the structured report into a fixed-layout
// paginated document. The concrete engine lives outside this module; each
// section becomes a heading followed by its table or placeholder text.
type PageRenderer interface {
	Render(doc report.Document) ([]byte, error)
}

// ErrNoRenderer means no paginated renderer is configured.
var ErrNoRenderer = errors.New("export: no page renderer configured")

// Markdown writes the rendered report verbatim to "<project name>.md"
// under dir and returns the written path.
func Markdown(dir string, p project.Project, entries []*entry.Entry) (string, error) {
	path := filepath.Join(dir, p.Name+".md")
	if err := os.WriteFile(path, []byte(report.Render(p, entries)), 0o644); err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	return path, nil
}

// PDF renders the report through r and writes "<project name>.pdf" under
// dir. A missing or failing renderer is surfaced, never swallowed.
func PDF(dir string, r PageRenderer, p project.Project, entries []*entry.Entry) (string, error) {
	if r == nil {
		return "", fmt.Errorf("export failed: %w", ErrNoRenderer)
	}
	data, err := r.Render(report.Build(p, entries))
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	path := filepath.Join(dir, p.Name+".pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	return path, nil
}
