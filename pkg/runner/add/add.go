package add

import (
	"context"

	"github.com/fatih/color"

	"tableflip.dev/pestle/pkg/app"
	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/printers"
)

type Add struct {
	Project   string
	Category  category.Category
	Narrative string
	Risk      float64
	Tags      string

	Service *app.Service
}

func (a *Add) Do(ctx context.Context) error {
	p, err := a.Service.Open(a.Project)
	if err != nil {
		return err
	}

	e, err := a.Service.Entries.Add(a.Category, a.Narrative, a.Risk, a.Tags)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{DarkMode: a.Service.Gateway.ReadDarkMode()}
	if e == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("nothing added: narrative is empty")
		return nil
	}

	all := a.Service.Entries.ListByCategory(a.Category)
	pp.TitleWithCount(a.Category.Icon()+" "+a.Category.String()+" - "+p.Name, len(all))
	pp.Entries(all...)
	return nil
}
