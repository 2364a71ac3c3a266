package options

import (
	"github.com/spf13/cobra"
)

// SummaryOptions captures the filter and sort flags for the summary view.
type SummaryOptions struct {
	Categories []string
	Tags       string
	Sort       string
	Descending bool
}

func AddSummaryArgs(cmd *cobra.Command, o *SummaryOptions) {
	cmd.Flags().StringSliceVarP(&o.Categories, "categories", "c", nil,
		"Limit to these categories. Defaults to all six.")
	cmd.Flags().StringVarP(&o.Tags, "tags", "t", "",
		"Keep entries matching at least one of these comma-separated tags.")
	cmd.Flags().StringVarP(&o.Sort, "sort", "s", "risk",
		"Sort field. One of 'risk', 'category' or 'updated'.")
	cmd.Flags().BoolVar(&o.Descending, "desc", false,
		"Sort descending.")
}
