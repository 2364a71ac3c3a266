package app

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/pestle/pkg/project"
	"tableflip.dev/pestle/pkg/store"
	"tableflip.dev/pestle/pkg/timeutil"
)

var (
	// ErrEmptyName rejects creation with a blank trimmed name.
	ErrEmptyName = errors.New("app: project name required")
	// ErrDuplicateName rejects creation when the trimmed name matches an
	// existing project case-insensitively.
	ErrDuplicateName = errors.New("app: project name must be unique")
)

// ProjectRepository owns the session's project list and writes the full
// list through on every change.
type ProjectRepository struct {
	gateway  store.Gateway
	projects []project.Project

	now func() time.Time
}

// NewProjectRepository loads the stored project list once at session start.
func NewProjectRepository(g store.Gateway) *ProjectRepository {
	return &ProjectRepository{
		gateway:  g,
		projects: g.ReadProjects(),
		now:      time.Now,
	}
}

// List returns the projects in insertion order.
func (r *ProjectRepository) List() []project.Project {
	return r.projects
}

// Get finds a project by id.
func (r *ProjectRepository) Get(id string) (project.Project, bool) {
	for _, p := range r.projects {
		if p.ID == id {
			return p, true
		}
	}
	return project.Project{}, false
}

// FindByName matches a project name case-insensitively after trimming.
func (r *ProjectRepository) FindByName(name string) (project.Project, bool) {
	needle := strings.TrimSpace(name)
	for _, p := range r.projects {
		if strings.EqualFold(p.Name, needle) {
			return p, true
		}
	}
	return project.Project{}, false
}

// Create validates the name, appends the new project, persists the list,
// and selects the new project.
func (r *ProjectRepository) Create(name string) (project.Project, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return project.Project{}, ErrEmptyName
	}
	if _, exists := r.FindByName(trimmed); exists {
		return project.Project{}, ErrDuplicateName
	}

	now := timeutil.Timestamp{Time: r.now()}
	p := project.Project{
		ID:      uuid.NewString(),
		Name:    trimmed,
		Created: now,
		Updated: now,
	}
	r.projects = append(r.projects, p)
	if err := r.sync(); err != nil {
		return project.Project{}, err
	}
	if err := r.gateway.WriteSelectedProject(p.ID); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

// Delete removes the project, persists the remaining list, and
// cascade-deletes the project's entry partition so no orphaned storage is
// left behind. Clears the stored selection when it pointed at the deleted
// project. Unknown ids are a silent no-op.
func (r *ProjectRepository) Delete(id string) error {
	kept := make([]project.Project, 0, len(r.projects))
	found := false
	for _, p := range r.projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return nil
	}
	r.projects = kept
	if err := r.sync(); err != nil {
		return err
	}
	if err := r.gateway.RemoveEntries(id); err != nil {
		return err
	}
	if r.gateway.ReadSelectedProject() == id {
		return r.gateway.RemoveSelectedProject()
	}
	return nil
}

// Select persists id as the active project for the next session.
func (r *ProjectRepository) Select(id string) error {
	return r.gateway.WriteSelectedProject(id)
}

// Selected resolves the persisted selection against the current list.
func (r *ProjectRepository) Selected() (project.Project, bool) {
	id := r.gateway.ReadSelectedProject()
	if id == "" {
		return project.Project{}, false
	}
	return r.Get(id)
}

// sync persists the full list. An empty list is never written so a fresh
// session cannot clobber stored projects before the initial load.
func (r *ProjectRepository) sync() error {
	if len(r.projects) == 0 {
		return nil
	}
	return r.gateway.WriteProjects(r.projects)
}
