package export

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/pestle/pkg/app"
	docs "tableflip.dev/pestle/pkg/export"
	"tableflip.dev/pestle/pkg/report"
)

type Format string

const (
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
	FormatPreview  Format = "preview"
)

type Export struct {
	Project string
	Format  Format
	Dir     string
	// Renderer is the external paginated-document engine; nil means PDF
	// export reports a failure instead of silently doing nothing.
	Renderer docs.PageRenderer

	Service *app.Service
}

func (ex *Export) Do(ctx context.Context) error {
	p, err := ex.Service.Open(ex.Project)
	if err != nil {
		return err
	}
	entries := ex.Service.Entries.List()

	switch ex.Format {
	case FormatMarkdown:
		path, err := docs.Markdown(ex.Dir, p, entries)
		if err != nil {
			return err
		}
		fmt.Printf("exported %s\n", path)
		return nil
	case FormatPDF:
		path, err := docs.PDF(ex.Dir, ex.Renderer, p, entries)
		if err != nil {
			return err
		}
		fmt.Printf("exported %s\n", path)
		return nil
	case FormatPreview:
		style := "light"
		if ex.Service.Gateway.ReadDarkMode() {
			style = "dark"
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return err
		}
		out, err := renderer.Render(report.Render(p, entries))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}
	return fmt.Errorf("export: unknown format %q", ex.Format)
}
