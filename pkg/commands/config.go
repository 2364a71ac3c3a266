package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Adjust tool settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addConfigDarkMode(cmd)

	topLevel.AddCommand(cmd)
}

func addConfigDarkMode(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "dark-mode on|off",
		Short: "Pick the palette the preview and listings use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var on bool
			switch args[0] {
			case "on":
				on = true
			case "off":
				on = false
			default:
				return fmt.Errorf("want on or off, got %q", args[0])
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			if err := svc.Gateway.WriteDarkMode(on); err != nil {
				return output.HandleError(err)
			}
			fmt.Printf("dark mode %s\n", args[0])
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
