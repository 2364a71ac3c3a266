package edit

import (
	"context"

	"github.com/fatih/color"

	"tableflip.dev/pestle/pkg/app"
	"tableflip.dev/pestle/pkg/entry"
	"tableflip.dev/pestle/pkg/printers"
)

// Edit replaces an entry's mutable fields. Nil fields keep the current
// value, so a command can change just the risk or just the tags.
type Edit struct {
	Project   string
	ID        string
	Narrative *string
	Risk      *float64
	Tags      *string

	Service *app.Service
}

func (ed *Edit) Do(ctx context.Context) error {
	if _, err := ed.Service.Open(ed.Project); err != nil {
		return err
	}

	current, ok := ed.Service.Entries.Get(ed.ID)
	if !ok {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("no entry with id %s\n", ed.ID)
		return nil
	}

	narrative := current.Narrative
	if ed.Narrative != nil {
		narrative = *ed.Narrative
	}
	risk := current.Risk
	if ed.Risk != nil {
		risk = *ed.Risk
	}
	tags := entry.JoinTags(current.Tags)
	if ed.Tags != nil {
		tags = *ed.Tags
	}

	updated, err := ed.Service.Entries.Update(ed.ID, narrative, risk, tags)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, DarkMode: ed.Service.Gateway.ReadDarkMode()}
	all := ed.Service.Entries.ListByCategory(updated.Category)
	pp.TitleWithCount(updated.Category.Icon()+" "+updated.Category.String(), len(all))
	pp.Entries(all...)
	return nil
}
