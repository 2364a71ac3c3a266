// Package report flattens a project and its entries into the
// category-grouped analysis document.
package report

import (
	"fmt"
	"strings"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/entry"
	"tableflip.dev/pestle/pkg/project"
)

// NoEntries is the placeholder emitted for categories without entries.
const NoEntries = "_No entries_"

// Row is one rendered entry line in a category table.
type Row struct {
	Narrative string
	Risk      string
	Tags      string
	Updated   string
}

// Section is one category block of the document. No rows means the
// category renders the placeholder.
type Section struct {
	Category category.Category
	Rows     []Row
}

// Document is the structured form of the report. Paginated renderers
// consume this; the markdown export is derived from it.
type Document struct {
	Title    string
	Sections []Section
}

var newlineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Build groups entries under the six categories in canonical PESTLE order.
// Rows keep the entry collection's existing order; nothing is re-sorted.
// Output depends only on the inputs, so identical input renders
// byte-identically downstream.
func Build(p project.Project, entries []*entry.Entry) Document {
	doc := Document{
		Title:    fmt.Sprintf("PESTLE Analysis: %s", p.Name),
		Sections: make([]Section, 0, len(category.All())),
	}
	for _, c := range category.All() {
		section := Section{Category: c}
		for _, e := range entries {
			if e.Category != c {
				continue
			}
			tags := "-"
			if len(e.Tags) > 0 {
				tags = entry.JoinTags(e.Tags)
			}
			section.Rows = append(section.Rows, Row{
				Narrative: newlineFlattener.Replace(e.Narrative),
				Risk:      entry.FormatRisk(e.Risk),
				Tags:      tags,
				Updated:   e.Updated.Date(),
			})
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc
}

// Markdown renders the document in the layout the exporter writes
// verbatim: a top-level heading, one subheading per category, and either
// the placeholder or a four-column table.
func Markdown(doc Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	for _, section := range doc.Sections {
		fmt.Fprintf(&b, "## %s\n\n", section.Category)
		if len(section.Rows) == 0 {
			b.WriteString(NoEntries + "\n\n")
			continue
		}
		b.WriteString("| Narrative | Risk | Tags | Updated |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, row := range section.Rows {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", row.Narrative, row.Risk, row.Tags, row.Updated)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Render is the one-call form: Build then Markdown.
func Render(p project.Project, entries []*entry.Entry) string {
	return Markdown(Build(p, entries))
}
