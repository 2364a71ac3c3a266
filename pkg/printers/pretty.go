// Package printers renders workspace state for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/entry"
	"tableflip.dev/pestle/pkg/project"
)

type PrettyPrint struct {
	ShowID bool
	// DarkMode picks the accent palette for headings.
	DarkMode bool
}

var spacing = strings.Repeat(" ", len("36 chars of a canonical uuid string  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) accent() *color.Color {
	if pp.DarkMode {
		return color.New(color.Bold, color.Underline, color.FgHiCyan)
	}
	return color.New(color.Bold, color.Underline)
}

func (pp *PrettyPrint) Title(title string) {
	t := pp.accent()
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := pp.accent()
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Projects lists the projects, marking the selected one.
func (pp *PrettyPrint) Projects(selectedID string, projects ...project.Project) {
	if len(projects) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "NAME", "CREATED", "ID")
	for _, p := range projects {
		marker := " "
		if p.ID == selectedID {
			marker = "*"
		}
		tbl.AddRow(marker, p.Name, p.Created.Date(), p.ID)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Entries renders the entries of one category as a table.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range entries {
		risk := riskColor(e.Risk).Sprint(entry.FormatRisk(e.Risk))
		tags := entry.JoinTags(e.Tags)
		if tags == "" {
			tags = "-"
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(e.ID), risk, e.Narrative, tags, e.Updated.Date())
		} else {
			tbl.AddRow(risk, e.Narrative, tags, e.Updated.Date())
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Summary renders the cross-category view with a category column.
func (pp *PrettyPrint) Summary(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no entries match filters\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.Wrap = true
	tbl.AddRow("CATEGORY", "RISK", "NARRATIVE", "TAGS", "UPDATED")
	for _, e := range entries {
		risk := riskColor(e.Risk).Sprint(entry.FormatRisk(e.Risk))
		tags := entry.JoinTags(e.Tags)
		if tags == "" {
			tags = "-"
		}
		tbl.AddRow(e.Category.String(), risk, e.Narrative, tags, e.Updated.Date())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Prompts renders a category checklist as a bullet list.
func (pp *PrettyPrint) Prompts(c category.Category, checklist []string, overridden bool) {
	t := pp.accent()
	_, _ = t.Printf("%s %s Prompts", c.Icon(), c)
	if overridden {
		f := color.New(color.Faint)
		_, _ = f.Print(" (customized)")
	}
	fmt.Println("")
	for _, q := range checklist {
		fmt.Printf("  - %s\n", q)
	}
	fmt.Println("")
}

func riskColor(risk float64) *color.Color {
	switch {
	case risk >= 8:
		return color.New(color.FgHiRed)
	case risk >= 5:
		return color.New(color.FgHiYellow)
	default:
		return color.New(color.FgHiGreen)
	}
}
