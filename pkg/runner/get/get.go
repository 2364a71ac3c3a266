package get

import (
	"context"

	"tableflip.dev/pestle/pkg/app"
	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/printers"
)

type Get struct {
	Project string
	// Category narrows the listing; nil lists every category.
	Category *category.Category
	ShowID   bool

	Service *app.Service
}

func (g *Get) Do(ctx context.Context) error {
	p, err := g.Service.Open(g.Project)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{
		ShowID:   g.ShowID,
		DarkMode: g.Service.Gateway.ReadDarkMode(),
	}
	pp.Title(p.Name)
	pp.NewLine()

	categories := category.All()
	if g.Category != nil {
		categories = []category.Category{*g.Category}
	}
	for _, c := range categories {
		all := g.Service.Entries.ListByCategory(c)
		pp.TitleWithCount(c.Icon()+" "+c.String(), len(all))
		pp.Entries(all...)
	}
	return nil
}
