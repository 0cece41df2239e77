package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bundle/internal/app"
)

func (c *CLI) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show every dist bundle and whether it matches the last build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			return c.app.Report(cmd.Context(), cmd.OutOrStdout(), app.ReportOptions{Root: root})
		},
	}
}
