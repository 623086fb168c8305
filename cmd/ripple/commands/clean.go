package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ripple/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove persisted build state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, _ := cmd.Flags().GetBool("summaries")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{}

			switch {
			case all:
				opts.Record = true
				opts.Summaries = true
			case summaries:
				opts.Summaries = true
			default:
				// Default behavior: drop the build record only
				opts.Record = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("summaries", "s", false, "Remove the dependency summary directory")
	cmd.Flags().BoolP("all", "a", false, "Remove all persisted build state")

	return cmd
}
