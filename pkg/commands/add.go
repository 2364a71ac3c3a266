package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/commands/options"
	"tableflip.dev/pestle/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry to a category",
		Example: `
pestle add political "Election year policy churn" --risk 7 --tags regulation,uncertainty
pestle add tech "Vendor API deprecation" -r 4.5
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, c := range category.All() {
		addAddCategory(cmd, c)
	}

	topLevel.AddCommand(cmd)
}

func addAddCategory(topLevel *cobra.Command, c category.Category) {
	po := &options.ProjectOptions{}
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:     c.Noun() + " NARRATIVE",
		Short:   "Add a " + c.Noun() + " entry",
		Aliases: c.Aliases(),
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return eo.ValidateRisk()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			a := add.Add{
				Project:   po.Project,
				Category:  c,
				Narrative: strings.Join(args, " "),
				Risk:      eo.Risk,
				Tags:      eo.Tags,
				Service:   svc,
			}
			return output.HandleError(a.Do(cmd.Context()))
		},
	}
	options.AddProjectArg(cmd, po)
	options.AddEntryArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
