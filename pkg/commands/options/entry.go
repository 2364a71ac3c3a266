package options

import (
	"fmt"

	"github.com/spf13/cobra"
)

// EntryOptions captures the entry field flags for add and edit commands.
type EntryOptions struct {
	Risk float64
	Tags string
}

// AddEntryArgs wires the risk and tags flags on the provided command.
func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().Float64VarP(&o.Risk, "risk", "r", 5,
		"Risk factor, 1 to 10.")
	cmd.Flags().StringVarP(&o.Tags, "tags", "t", "",
		"Comma-separated tags.")
}

// ValidateRisk enforces the 1-10 domain at the command boundary. The core
// stores whatever it is given; only user input is gated here.
func (o *EntryOptions) ValidateRisk() error {
	if o.Risk < 1 || o.Risk > 10 {
		return fmt.Errorf("risk must be between 1 and 10, got %v", o.Risk)
	}
	return nil
}
