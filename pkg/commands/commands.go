package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/pestle/pkg/app"
	"tableflip.dev/pestle/pkg/commands/options"
	"tableflip.dev/pestle/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pestle",
		Short: base.Wrap80("PESTLE environmental scanning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addProject(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addSummary(topLevel)
	addPrompts(topLevel)
	addExport(topLevel)
	addConfig(topLevel)
	addVersion(topLevel)
}

// newService opens the configured store and wires the service the runners
// share.
func newService() (*app.Service, error) {
	g, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.New(g), nil
}
