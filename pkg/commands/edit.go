package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pestle/pkg/commands/options"
	"tableflip.dev/pestle/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	eo := &options.EntryOptions{}
	var narrative string
	var tags string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an entry's narrative, risk or tags",
		Example: `
pestle edit 6ba7b810-9dad-11d1-80b4-00c04fd430c8 --risk 9
pestle edit 6ba7b810-9dad-11d1-80b4-00c04fd430c8 --narrative "Revised wording" --tags supply,cost
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("risk") {
				return eo.ValidateRisk()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			// Unchanged flags stay nil so the entry keeps its current
			// values.
			ed := edit.Edit{
				Project: po.Project,
				ID:      args[0],
				Service: svc,
			}
			if cmd.Flags().Changed("narrative") {
				ed.Narrative = &narrative
			}
			if cmd.Flags().Changed("risk") {
				ed.Risk = &eo.Risk
			}
			if cmd.Flags().Changed("tags") {
				ed.Tags = &tags
			}
			return output.HandleError(ed.Do(cmd.Context()))
		},
	}
	options.AddProjectArg(cmd, po)
	cmd.Flags().StringVarP(&narrative, "narrative", "n", "",
		"Replace the narrative.")
	cmd.Flags().Float64VarP(&eo.Risk, "risk", "r", 5,
		"Replace the risk factor, 1 to 10.")
	cmd.Flags().StringVarP(&tags, "tags", "t", "",
		"Replace the comma-separated tags.")

	topLevel.AddCommand(cmd)
}
