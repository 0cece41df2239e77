package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bundle/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the dist bundles and the build info store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			return c.app.Clean(cmd.Context(), app.CleanOptions{Root: root})
		},
	}
}
