package cli

import (
	"github.com/spf13/cobra"

	"dailylog/internal/report"
)

func (cli *CLI) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the collated log entries interactively",
		Long:  "Builds the same report as the root command and opens it in a terminal browser instead of writing it to a file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, iv, entries, err := cli.pipeline(cmd)
			if err != nil {
				return err
			}
			return cli.opts.Browse(report.Days(entries), iv)
		},
	}
}
