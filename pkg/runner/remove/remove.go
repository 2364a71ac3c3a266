package remove

import (
	"context"

	"github.com/fatih/color"

	"tableflip.dev/pestle/pkg/app"
	"tableflip.dev/pestle/pkg/printers"
)

type Remove struct {
	Project string
	ID      string

	Service *app.Service
}

func (r *Remove) Do(ctx context.Context) error {
	p, err := r.Service.Open(r.Project)
	if err != nil {
		return err
	}

	e, ok := r.Service.Entries.Get(r.ID)
	if !ok {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("no entry with id %s\n", r.ID)
		return nil
	}
	c := e.Category
	if err := r.Service.Entries.Remove(r.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, DarkMode: r.Service.Gateway.ReadDarkMode()}
	all := r.Service.Entries.ListByCategory(c)
	pp.TitleWithCount(c.Icon()+" "+c.String()+" - "+p.Name, len(all))
	pp.Entries(all...)
	return nil
}
