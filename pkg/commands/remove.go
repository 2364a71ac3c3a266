package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pestle/pkg/commands/options"
	"tableflip.dev/pestle/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}

	cmd := &cobra.Command{
		Use:     "remove ID",
		Short:   "Remove an entry",
		Aliases: []string{"rm"},
		Example: `
pestle remove 6ba7b810-9dad-11d1-80b4-00c04fd430c8
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := remove.Remove{
				Project: po.Project,
				ID:      args[0],
				Service: svc,
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddProjectArg(cmd, po)

	topLevel.AddCommand(cmd)
}
