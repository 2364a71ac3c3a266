package report

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/entry"
	"tableflip.dev/pestle/pkg/project"
	"tableflip.dev/pestle/pkg/timeutil"
)

func testEntry(c category.Category, narrative string, risk float64, tags string, updated time.Time) *entry.Entry {
	e := entry.New(c, narrative, risk, tags)
	e.ID = "id-" + narrative
	e.Updated = timeutil.Timestamp{Time: updated}
	return e
}

func TestRenderLayout(t *testing.T) {
	p := project.Project{ID: "p1", Name: "Acme"}
	updated := time.Date(2026, time.June, 5, 14, 30, 0, 0, time.UTC)
	entries := []*entry.Entry{
		testEntry(category.Economic, "Inflation risk", 7, "finance, macro", updated),
	}

	got := Render(p, entries)

	if !strings.HasPrefix(got, "# PESTLE Analysis: Acme\n\n") {
		t.Fatalf("missing title heading:\n%s", got)
	}
	// All six categories in canonical order.
	lastIdx := -1
	for _, c := range category.All() {
		idx := strings.Index(got, "## "+c.String()+"\n")
		if idx < 0 {
			t.Fatalf("missing section for %s:\n%s", c, got)
		}
		if idx < lastIdx {
			t.Fatalf("section %s out of canonical order", c)
		}
		lastIdx = idx
	}
	if !strings.Contains(got, "| Narrative | Risk | Tags | Updated |\n| --- | --- | --- | --- |\n") {
		t.Fatalf("missing table header:\n%s", got)
	}
	if !strings.Contains(got, "| Inflation risk | 7 | finance, macro | 2026-06-05 |\n") {
		t.Fatalf("missing entry row:\n%s", got)
	}
	// The five empty categories carry the placeholder.
	if n := strings.Count(got, NoEntries); n != 5 {
		t.Fatalf("expected 5 placeholders, got %d:\n%s", n, got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	p := project.Project{ID: "p1", Name: "Acme"}
	updated := time.Date(2026, time.June, 5, 14, 30, 0, 0, time.UTC)
	entries := []*entry.Entry{
		testEntry(category.Political, "Election cycle", 4, "gov", updated),
		testEntry(category.Political, "Trade policy", 6, "", updated),
	}
	first := Render(p, entries)
	second := Render(p, entries)
	if first != second {
		t.Fatal("rendering the same input twice must be byte-identical")
	}
}

func TestNarrativeLineBreaksFlattened(t *testing.T) {
	p := project.Project{Name: "Acme"}
	entries := []*entry.Entry{
		testEntry(category.Social, "line one\nline two\r\nline three", 3, "", time.Now()),
	}
	got := Render(p, entries)
	if !strings.Contains(got, "| line one line two line three | 3 | - |") {
		t.Fatalf("narrative not flattened:\n%s", got)
	}
}

func TestEmptyTagListRendersDash(t *testing.T) {
	p := project.Project{Name: "Acme"}
	entries := []*entry.Entry{
		testEntry(category.Legal, "GDPR exposure", 8, "", time.Now()),
	}
	got := Render(p, entries)
	if !strings.Contains(got, "| GDPR exposure | 8 | - |") {
		t.Fatalf("empty tags should render as dash:\n%s", got)
	}
}

func TestRowsKeepInsertionOrder(t *testing.T) {
	p := project.Project{Name: "Acme"}
	now := time.Now()
	entries := []*entry.Entry{
		testEntry(category.Technological, "zeta", 9, "", now),
		testEntry(category.Technological, "alpha", 1, "", now),
	}
	doc := Build(p, entries)
	var tech Section
	for _, s := range doc.Sections {
		if s.Category == category.Technological {
			tech = s
		}
	}
	if len(tech.Rows) != 2 || tech.Rows[0].Narrative != "zeta" || tech.Rows[1].Narrative != "alpha" {
		t.Fatalf("rows re-ordered: %v", tech.Rows)
	}
}

func TestFractionalRiskPreserved(t *testing.T) {
	p := project.Project{Name: "Acme"}
	entries := []*entry.Entry{
		testEntry(category.Environmental, "Drought", 7.5, "", time.Now()),
	}
	got := Render(p, entries)
	if !strings.Contains(got, "| Drought | 7.5 |") {
		t.Fatalf("fractional risk not preserved:\n%s", got)
	}
}

func TestEmptyProjectAllPlaceholders(t *testing.T) {
	got := Render(project.Project{Name: "Fresh"}, nil)
	if n := strings.Count(got, NoEntries); n != 6 {
		t.Fatalf("expected 6 placeholders for an empty project, got %d", n)
	}
	if strings.Contains(got, "| Narrative |") {
		t.Fatal("no tables expected for an empty project")
	}
}
