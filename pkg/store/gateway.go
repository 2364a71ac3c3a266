// Package store persists the workspace state as JSON blobs in a
// string-keyed store, one logical record type per key pattern.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/entry"
	"tableflip.dev/pestle/pkg/project"
)

const (
	projectsKey   = "pestle-projects"
	promptsKey    = "pestle-prompts"
	selectedKey   = "pestle-selected-project-id"
	darkModeKey   = "pestle-dark-mode"
	entriesPrefix = "pestle-entries-"
)

// EntriesKey derives the per-project entry partition key.
func EntriesKey(projectID string) string {
	return entriesPrefix + projectID
}

// Gateway is the typed persistence boundary. Reads are total: absent or
// unparseable data yields the empty value for the type, never an error.
// Writes are synchronous full-snapshot replaces.
type Gateway interface {
	ReadProjects() []project.Project
	WriteProjects(projects []project.Project) error
	ReadEntries(projectID string) []*entry.Entry
	WriteEntries(projectID string, entries []*entry.Entry) error
	RemoveEntries(projectID string) error
	ReadPromptOverrides() map[category.Category][]string
	WritePromptOverrides(overrides map[category.Category][]string) error
	ReadSelectedProject() string
	WriteSelectedProject(id string) error
	RemoveSelectedProject() error
	ReadDarkMode() bool
	WriteDarkMode(on bool) error
}

// New wraps a blob store with the typed gateway.
func New(b Blob) Gateway {
	return &gateway{b: b}
}

type gateway struct {
	b Blob
}

// read decodes the record at key into target, reporting whether anything
// usable was there. Unparseable stored data is treated as absent so
// external tampering with storage cannot make the tool unusable.
func (g *gateway) read(key string, target interface{}) bool {
	if !g.b.Has(key) {
		return false
	}
	data, err := g.b.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", key, err)
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode %s: %v\n", key, err)
		return false
	}
	return true
}

func (g *gateway) write(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := g.b.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (g *gateway) remove(key string) error {
	if !g.b.Has(key) {
		return nil
	}
	if err := g.b.Erase(key); err != nil {
		return fmt.Errorf("store: remove %s: %w", key, err)
	}
	return nil
}

func (g *gateway) ReadProjects() []project.Project {
	projects := make([]project.Project, 0)
	g.read(projectsKey, &projects)
	return projects
}

func (g *gateway) WriteProjects(projects []project.Project) error {
	return g.write(projectsKey, projects)
}

func (g *gateway) ReadEntries(projectID string) []*entry.Entry {
	entries := make([]*entry.Entry, 0)
	g.read(EntriesKey(projectID), &entries)
	return entries
}

func (g *gateway) WriteEntries(projectID string, entries []*entry.Entry) error {
	return g.write(EntriesKey(projectID), entries)
}

func (g *gateway) RemoveEntries(projectID string) error {
	return g.remove(EntriesKey(projectID))
}

func (g *gateway) ReadPromptOverrides() map[category.Category][]string {
	overrides := make(map[category.Category][]string)
	g.read(promptsKey, &overrides)
	return overrides
}

func (g *gateway) WritePromptOverrides(overrides map[category.Category][]string) error {
	return g.write(promptsKey, overrides)
}

func (g *gateway) ReadSelectedProject() string {
	if !g.b.Has(selectedKey) {
		return ""
	}
	data, err := g.b.Read(selectedKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", selectedKey, err)
		return ""
	}
	return string(data)
}

func (g *gateway) WriteSelectedProject(id string) error {
	if err := g.b.Write(selectedKey, []byte(id)); err != nil {
		return fmt.Errorf("store: write %s: %w", selectedKey, err)
	}
	return nil
}

func (g *gateway) RemoveSelectedProject() error {
	return g.remove(selectedKey)
}

func (g *gateway) ReadDarkMode() bool {
	if !g.b.Has(darkModeKey) {
		return false
	}
	data, err := g.b.Read(darkModeKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", darkModeKey, err)
		return false
	}
	on, err := strconv.ParseBool(string(data))
	if err != nil {
		return false
	}
	return on
}

func (g *gateway) WriteDarkMode(on bool) error {
	if err := g.b.Write(darkModeKey, []byte(strconv.FormatBool(on))); err != nil {
		return fmt.Errorf("store: write %s: %w", darkModeKey, err)
	}
	return nil
}
