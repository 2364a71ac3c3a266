// Package app wires the persistence gateway and the repositories into the
// service the CLI runners share.
package app

import (
	"errors"

	"tableflip.dev/pestle/pkg/project"
	"tableflip.dev/pestle/pkg/prompts"
	"tableflip.dev/pestle/pkg/store"
)

// ErrNoProject means no project is selected and none was named.
var ErrNoProject = errors.New("app: no project selected")

// Service bundles the repositories over one gateway.
type Service struct {
	Gateway  store.Gateway
	Projects *ProjectRepository
	Entries  *EntryRepository
	Prompts  *prompts.Service
}

// New builds a Service, loading the project list from the gateway.
func New(g store.Gateway) *Service {
	return &Service{
		Gateway:  g,
		Projects: NewProjectRepository(g),
		Entries:  NewEntryRepository(g),
		Prompts:  &prompts.Service{Gateway: g},
	}
}

// Resolve picks the working project: by name when one is given, otherwise
// the persisted selection.
func (s *Service) Resolve(name string) (project.Project, error) {
	if name != "" {
		p, ok := s.Projects.FindByName(name)
		if !ok {
			return project.Project{}, errors.New("app: no project named " + name)
		}
		return p, nil
	}
	p, ok := s.Projects.Selected()
	if !ok {
		return project.Project{}, ErrNoProject
	}
	return p, nil
}

// Open resolves the working project and loads its entries.
func (s *Service) Open(name string) (project.Project, error) {
	p, err := s.Resolve(name)
	if err != nil {
		return project.Project{}, err
	}
	s.Entries.SwitchProject(p.ID)
	return p, nil
}
