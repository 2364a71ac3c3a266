package summary

import (
	"context"

	"tableflip.dev/pestle/pkg/app"
	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/printers"
	view "tableflip.dev/pestle/pkg/summary"
)

type Summary struct {
	Project    string
	Categories []string
	Tags       string
	Sort       string
	Descending bool

	Service *app.Service
}

func (s *Summary) Do(ctx context.Context) error {
	p, err := s.Service.Open(s.Project)
	if err != nil {
		return err
	}

	selected := category.All()
	if len(s.Categories) > 0 {
		selected = make([]category.Category, 0, len(s.Categories))
		for _, raw := range s.Categories {
			c, err := category.Parse(raw)
			if err != nil {
				return err
			}
			selected = append(selected, c)
		}
	}

	field := view.SortRisk
	if s.Sort != "" {
		field, err = view.ParseField(s.Sort)
		if err != nil {
			return err
		}
	}

	entries := view.View(s.Service.Entries.List(), view.Options{
		Categories: selected,
		TagFilter:  s.Tags,
		Sort:       field,
		Ascending:  !s.Descending,
	})

	pp := printers.PrettyPrint{DarkMode: s.Service.Gateway.ReadDarkMode()}
	pp.TitleWithCount("Summary - "+p.Name, len(entries))
	pp.Summary(entries...)
	return nil
}
