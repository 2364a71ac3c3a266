// Package prompt holds the runners for the prompt checklist commands.
package prompt

import (
	"context"

	"tableflip.dev/pestle/pkg/app"
	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/printers"
)

type Show struct {
	Category category.Category
	Service  *app.Service
}

func (s *Show) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{DarkMode: s.Service.Gateway.ReadDarkMode()}
	pp.Prompts(s.Category, s.Service.Prompts.For(s.Category), s.Service.Prompts.Overridden(s.Category))
	return nil
}

type Set struct {
	Category  category.Category
	Checklist []string
	Service   *app.Service
}

func (s *Set) Do(ctx context.Context) error {
	if err := s.Service.Prompts.Set(s.Category, s.Checklist); err != nil {
		return err
	}
	pp := printers.PrettyPrint{DarkMode: s.Service.Gateway.ReadDarkMode()}
	pp.Prompts(s.Category, s.Service.Prompts.For(s.Category), s.Service.Prompts.Overridden(s.Category))
	return nil
}

type Reset struct {
	Category category.Category
	Service  *app.Service
}

func (r *Reset) Do(ctx context.Context) error {
	if err := r.Service.Prompts.Reset(r.Category); err != nil {
		return err
	}
	pp := printers.PrettyPrint{DarkMode: r.Service.Gateway.ReadDarkMode()}
	pp.Prompts(r.Category, r.Service.Prompts.For(r.Category), false)
	return nil
}
