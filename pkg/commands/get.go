package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/commands/options"
	"tableflip.dev/pestle/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [CATEGORY]",
		Short: "Show the entries in a project, optionally for one category",
		Example: `
pestle get
pestle get economic
pestle get env --show-id
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var only *category.Category
			if len(args) == 1 {
				c, err := category.Parse(args[0])
				if err != nil {
					return err
				}
				only = &c
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			g := get.Get{
				Project:  po.Project,
				Category: only,
				ShowID:   io.ShowID,
				Service:  svc,
			}
			return output.HandleError(g.Do(cmd.Context()))
		},
	}
	options.AddProjectArg(cmd, po)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
