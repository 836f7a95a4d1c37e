package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/logger"
	"github.com/mcpdeck/mcpdeck/internal/settings"
)

var (
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "mcpdeck",
	Short: "Catalog MCP servers and keep app config files in sync",
	Long: `mcpdeck catalogs the MCP servers you use and the application config
files that reference them (Claude Desktop, VS Code, Cursor, Windsurf).

It can scan those configs for servers, import what it finds, and write
or remove server entries in each application's own config file.

State is persisted to ~/.mcpdeck/ (override with MCPDECK_HOME).`,
	Example: `  mcpdeck                         # Interactive dashboard
  mcpdeck setup                   # Create data dir, manifest, and settings
  mcpdeck scan --import           # Find servers in app configs and import them
  mcpdeck servers list            # Show the catalog
  mcpdeck sync my_server cursor   # Write my_server into Cursor's config`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress debug logging even when enabled in settings")

	// Command groups
	rootCmd.AddGroup(
		&cobra.Group{ID: "catalog", Title: "Catalog Commands:"},
		&cobra.Group{ID: "setup", Title: "Setup Commands:"},
	)

	// Hide the auto-generated completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
		return
	}
	cfg, err := settings.Load()
	logger.SetDebug(err == nil && cfg.Debug)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("mcpdeck %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("mcpdeck %s\n", version)
}
