// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ProjectOptions captures the common project selection flag.
type ProjectOptions struct {
	Project string
}

// AddProjectArg wires the project flag on the provided command.
func AddProjectArg(cmd *cobra.Command, o *ProjectOptions) {
	cmd.Flags().StringVarP(&o.Project, "project", "p", "",
		"Specify the project by name. Defaults to the selected project.")
}
