// Package projects holds the runners for project lifecycle commands.
package projects

import (
	"context"
	"fmt"

	"tableflip.dev/pestle/pkg/app"
	"tableflip.dev/pestle/pkg/printers"
)

type Create struct {
	Name    string
	Service *app.Service
}

func (c *Create) Do(ctx context.Context) error {
	p, err := c.Service.Projects.Create(c.Name)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{DarkMode: c.Service.Gateway.ReadDarkMode()}
	pp.Title("Projects")
	pp.Projects(p.ID, c.Service.Projects.List()...)
	return nil
}

type List struct {
	Service *app.Service
}

func (l *List) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{DarkMode: l.Service.Gateway.ReadDarkMode()}
	pp.Title("Projects")
	pp.Projects(l.Service.Gateway.ReadSelectedProject(), l.Service.Projects.List()...)
	return nil
}

type Select struct {
	Name    string
	Service *app.Service
}

func (s *Select) Do(ctx context.Context) error {
	p, ok := s.Service.Projects.FindByName(s.Name)
	if !ok {
		return fmt.Errorf("projects: no project named %q", s.Name)
	}
	if err := s.Service.Projects.Select(p.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{DarkMode: s.Service.Gateway.ReadDarkMode()}
	pp.Title("Projects")
	pp.Projects(p.ID, s.Service.Projects.List()...)
	return nil
}

type Delete struct {
	Name    string
	Service *app.Service
}

func (d *Delete) Do(ctx context.Context) error {
	p, ok := d.Service.Projects.FindByName(d.Name)
	if !ok {
		return fmt.Errorf("projects: no project named %q", d.Name)
	}
	if err := d.Service.Projects.Delete(p.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{DarkMode: d.Service.Gateway.ReadDarkMode()}
	pp.Title("Projects")
	pp.Projects(d.Service.Gateway.ReadSelectedProject(), d.Service.Projects.List()...)
	return nil
}
