package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/pestle/pkg/commands/options"
	"tableflip.dev/pestle/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	var dir string

	cmd := &cobra.Command{
		Use:   "export md|pdf|preview",
		Short: "Write the project report to a file, or preview it",
		Example: `
pestle export md
pestle export pdf --dir ./reports
pestle export preview
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := export.Format(args[0])
			switch format {
			case export.FormatMarkdown, export.FormatPDF, export.FormatPreview:
			default:
				return fmt.Errorf("unknown format %q, want md, pdf or preview", args[0])
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			ex := export.Export{
				Project: po.Project,
				Format:  format,
				Dir:     dir,
				Service: svc,
			}
			return output.HandleError(ex.Do(cmd.Context()))
		},
	}
	options.AddProjectArg(cmd, po)
	cmd.Flags().StringVarP(&dir, "dir", "d", ".",
		"Directory to write the report into.")

	topLevel.AddCommand(cmd)
}
