package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pestle/pkg/commands/options"
	"tableflip.dev/pestle/pkg/runner/summary"
)

func addSummary(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	so := &options.SummaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a filtered, sorted view across categories",
		Example: `
pestle summary
pestle summary --categories political,economic --sort updated --desc
pestle summary --tags regulation,cost
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := summary.Summary{
				Project:    po.Project,
				Categories: so.Categories,
				Tags:       so.Tags,
				Sort:       so.Sort,
				Descending: so.Descending,
				Service:    svc,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddProjectArg(cmd, po)
	options.AddSummaryArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
