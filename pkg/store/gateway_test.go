package store

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/entry"
	"tableflip.dev/pestle/pkg/project"
	"tableflip.dev/pestle/pkg/timeutil"
)

func stamp(t time.Time) timeutil.Timestamp {
	return timeutil.Timestamp{Time: t}
}

func TestProjectsRoundTrip(t *testing.T) {
	g := New(NewMemory())

	if got := g.ReadProjects(); len(got) != 0 {
		t.Fatalf("expected empty list from fresh store, got %v", got)
	}

	now := stamp(time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC))
	projects := []project.Project{
		{ID: "p1", Name: "Acme", Created: now, Updated: now},
		{ID: "p2", Name: "Globex", Created: now, Updated: now},
	}
	if err := g.WriteProjects(projects); err != nil {
		t.Fatal(err)
	}
	got := g.ReadProjects()
	if len(got) != 2 || got[0].Name != "Acme" || got[1].ID != "p2" {
		t.Fatalf("unexpected projects after round trip: %v", got)
	}
}

func TestEntriesPartitionedByProject(t *testing.T) {
	g := New(NewMemory())

	e := entry.New(category.Economic, "Inflation risk", 7, "finance, macro")
	e.ID = "e1"
	if err := g.WriteEntries("p1", []*entry.Entry{e}); err != nil {
		t.Fatal(err)
	}

	if got := g.ReadEntries("p2"); len(got) != 0 {
		t.Fatalf("partition leak: p2 sees %v", got)
	}
	got := g.ReadEntries("p1")
	if len(got) != 1 || got[0].ID != "e1" || got[0].Narrative != "Inflation risk" {
		t.Fatalf("unexpected entries: %v", got)
	}
	if !reflect.DeepEqual(got[0].Tags, []string{"finance", "macro"}) {
		t.Fatalf("tags did not survive the round trip: %v", got[0].Tags)
	}
}

func TestRemoveEntriesTotal(t *testing.T) {
	m := NewMemory()
	g := New(m)

	// Removing an absent partition is a no-op, not an error.
	if err := g.RemoveEntries("ghost"); err != nil {
		t.Fatalf("remove of absent partition should succeed: %v", err)
	}

	if err := g.WriteEntries("p1", []*entry.Entry{entry.New(category.Social, "x", 3, "")}); err != nil {
		t.Fatal(err)
	}
	if err := g.RemoveEntries("p1"); err != nil {
		t.Fatal(err)
	}
	if m.Has(EntriesKey("p1")) {
		t.Fatal("entry partition still present after remove")
	}
}

func TestCorruptRecordTreatedAsAbsent(t *testing.T) {
	m := NewMemory()
	if err := m.Write("pestle-projects", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if err := m.Write(EntriesKey("p1"), []byte(`"wrong shape"`)); err != nil {
		t.Fatal(err)
	}

	g := New(m)
	if got := g.ReadProjects(); len(got) != 0 {
		t.Fatalf("corrupt project list should read as empty, got %v", got)
	}
	if got := g.ReadEntries("p1"); len(got) != 0 {
		t.Fatalf("corrupt entry list should read as empty, got %v", got)
	}
}

func TestPromptOverrides(t *testing.T) {
	g := New(NewMemory())

	if got := g.ReadPromptOverrides(); len(got) != 0 {
		t.Fatalf("expected empty overrides, got %v", got)
	}
	overrides := map[category.Category][]string{
		category.Legal: {"What licenses expire this year?"},
	}
	if err := g.WritePromptOverrides(overrides); err != nil {
		t.Fatal(err)
	}
	got := g.ReadPromptOverrides()
	if !reflect.DeepEqual(got[category.Legal], overrides[category.Legal]) {
		t.Fatalf("unexpected overrides: %v", got)
	}
}

func TestSelectedProjectKey(t *testing.T) {
	g := New(NewMemory())

	if got := g.ReadSelectedProject(); got != "" {
		t.Fatalf("expected empty selection, got %q", got)
	}
	if err := g.WriteSelectedProject("p1"); err != nil {
		t.Fatal(err)
	}
	if got := g.ReadSelectedProject(); got != "p1" {
		t.Fatalf("expected p1, got %q", got)
	}
	if err := g.RemoveSelectedProject(); err != nil {
		t.Fatal(err)
	}
	if got := g.ReadSelectedProject(); got != "" {
		t.Fatalf("selection should be cleared, got %q", got)
	}
}

func TestDarkMode(t *testing.T) {
	m := NewMemory()
	g := New(m)

	if g.ReadDarkMode() {
		t.Fatal("dark mode should default off")
	}
	if err := g.WriteDarkMode(true); err != nil {
		t.Fatal(err)
	}
	if !g.ReadDarkMode() {
		t.Fatal("dark mode should be on")
	}
	// Stored as boolean-as-string.
	data, err := m.Read("pestle-dark-mode")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "true" {
		t.Fatalf("expected \"true\", got %q", data)
	}
}

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func TestDiskvBackedGateway(t *testing.T) {
	g, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	now := stamp(time.Now())
	if err := g.WriteProjects([]project.Project{{ID: "p1", Name: "Acme", Created: now, Updated: now}}); err != nil {
		t.Fatal(err)
	}
	e := entry.New(category.Technological, "Tech debt", 6, "stack")
	e.ID = "e1"
	if err := g.WriteEntries("p1", []*entry.Entry{e}); err != nil {
		t.Fatal(err)
	}

	got := g.ReadProjects()
	if len(got) != 1 || got[0].Name != "Acme" {
		t.Fatalf("unexpected projects from disk: %v", got)
	}
	entries := g.ReadEntries("p1")
	if len(entries) != 1 || entries[0].Narrative != "Tech debt" {
		t.Fatalf("unexpected entries from disk: %v", entries)
	}
	if err := g.RemoveEntries("p1"); err != nil {
		t.Fatal(err)
	}
	if len(g.ReadEntries("p1")) != 0 {
		t.Fatal("entries should be gone after remove")
	}
}
