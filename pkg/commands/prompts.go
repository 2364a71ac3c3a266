package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/runner/prompt"
)

func addPrompts(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prompts CATEGORY",
		Short: "Show the guiding questions for a category",
		Example: `
pestle prompts social
pestle prompts set legal --prompt "Any pending litigation?" --prompt "Licensing changes?"
pestle prompts reset legal
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := category.Parse(args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := prompt.Show{Category: c, Service: svc}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	addPromptsSet(cmd)
	addPromptsReset(cmd)

	topLevel.AddCommand(cmd)
}

func addPromptsSet(topLevel *cobra.Command) {
	var checklist []string

	cmd := &cobra.Command{
		Use:   "set CATEGORY",
		Short: "Replace a category's questions with a custom checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := category.Parse(args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := prompt.Set{
				Category:  c,
				Checklist: checklist,
				Service:   svc,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	cmd.Flags().StringArrayVar(&checklist, "prompt", nil,
		"A question for the checklist. Repeat for each question.")

	topLevel.AddCommand(cmd)
}

func addPromptsReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset CATEGORY",
		Short: "Restore a category's stock questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := category.Parse(args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := prompt.Reset{Category: c, Service: svc}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(cmd)
}
