package options

import (
	"github.com/spf13/cobra"
)

// IDOptions controls whether entry identifiers are shown.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show entry ids.")
}
