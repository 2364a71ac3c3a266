package app

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/entry"
	"tableflip.dev/pestle/pkg/store"
	"tableflip.dev/pestle/pkg/timeutil"
)

// EntryRepository owns the in-memory entry list for exactly one active
// project at a time, writing the full list through on every change.
type EntryRepository struct {
	gateway   store.Gateway
	projectID string
	entries   []*entry.Entry

	// skipSync is armed by SwitchProject and consumed exactly once so the
	// load itself never re-persists the data it just read.
	skipSync bool

	now func() time.Time
}

// NewEntryRepository returns a repository with no active project; call
// SwitchProject before use.
func NewEntryRepository(g store.Gateway) *EntryRepository {
	return &EntryRepository{
		gateway: g,
		entries: make([]*entry.Entry, 0),
		now:     time.Now,
	}
}

// SwitchProject discards the current entries and loads the partition for
// id. The reload does not write anything back to storage.
func (r *EntryRepository) SwitchProject(id string) {
	r.projectID = id
	r.entries = r.gateway.ReadEntries(id)
	r.skipSync = true
	r.sync()
}

// ProjectID returns the active project's identifier.
func (r *EntryRepository) ProjectID() string {
	return r.projectID
}

// List returns the entries in insertion order.
func (r *EntryRepository) List() []*entry.Entry {
	return r.entries
}

// ListByCategory filters the entries by category, preserving insertion
// order.
func (r *EntryRepository) ListByCategory(c category.Category) []*entry.Entry {
	filtered := make([]*entry.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Category == c {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Get finds an entry by id.
func (r *EntryRepository) Get(id string) (*entry.Entry, bool) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Add appends a new entry and persists. A blank trimmed narrative is
// silently ignored and returns nil.
func (r *EntryRepository) Add(c category.Category, narrative string, risk float64, tagsRaw string) (*entry.Entry, error) {
	if strings.TrimSpace(narrative) == "" {
		return nil, nil
	}
	e := entry.New(c, narrative, risk, tagsRaw)
	e.ID = uuid.NewString()
	now := timeutil.Timestamp{Time: r.now()}
	e.Created = now
	e.Updated = now
	r.entries = append(r.entries, e)
	return e, r.sync()
}

// Update replaces the entry's narrative, risk, and tags and refreshes
// updated_at. Category and created_at are never touched. Unknown ids are a
// silent no-op.
func (r *EntryRepository) Update(id string, narrative string, risk float64, tagsRaw string) (*entry.Entry, error) {
	e, ok := r.Get(id)
	if !ok {
		return nil, nil
	}
	e.Narrative = strings.TrimSpace(narrative)
	e.Risk = risk
	e.Tags = entry.SplitTags(tagsRaw)
	e.Updated = timeutil.Timestamp{Time: r.now()}
	return e, r.sync()
}

// Remove deletes the entry and persists, preserving the relative order of
// the remaining entries. Unknown ids are a silent no-op.
func (r *EntryRepository) Remove(id string) error {
	kept := make([]*entry.Entry, 0, len(r.entries))
	found := false
	for _, e := range r.entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return nil
	}
	r.entries = kept
	return r.sync()
}

// sync writes the full in-memory list back to the partition, except when
// the one-shot skip flag from SwitchProject is still armed.
func (r *EntryRepository) sync() error {
	if r.skipSync {
		r.skipSync = false
		return nil
	}
	if r.projectID == "" {
		return nil
	}
	return r.gateway.WriteEntries(r.projectID, r.entries)
}
