package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pestle/pkg/runner/projects"
)

func addProject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Example: `
pestle project create "Acme FY27"
pestle project list
pestle project select "Acme FY27"
pestle project delete "Acme FY27"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProjectCreate(cmd)
	addProjectList(cmd)
	addProjectSelect(cmd)
	addProjectDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addProjectCreate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project and select it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			c := projects.Create{
				Name:    strings.Join(args, " "),
				Service: svc,
			}
			return output.HandleError(c.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addProjectList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List projects",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			l := projects.List{Service: svc}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addProjectSelect(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "select NAME",
		Short: "Select the working project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := projects.Select{
				Name:    strings.Join(args, " "),
				Service: svc,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addProjectDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a project and its entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			d := projects.Delete{
				Name:    strings.Join(args, " "),
				Service: svc,
			}
			return output.HandleError(d.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(cmd)
}
