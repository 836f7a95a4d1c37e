package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Short:   "Browse the catalog interactively",
	GroupID: "catalog",
	RunE:    runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// runDashboard also backs the bare `mcpdeck` invocation.
func runDashboard(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	return tui.Run(cat.servers, cat.sources, cat.links)
}
