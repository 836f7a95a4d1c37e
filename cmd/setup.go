package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/model"
	"github.com/mcpdeck/mcpdeck/internal/paths"
	"github.com/mcpdeck/mcpdeck/internal/settings"
	"github.com/mcpdeck/mcpdeck/internal/store"
)

var setupForce bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the data directory, manifest, and settings",
	Long: `Bootstraps mcpdeck:

  - Creates ~/.mcpdeck/ (or MCPDECK_HOME)
  - Writes a sources manifest pointing at the standard app config locations
  - Writes a starter config.yaml
  - Detects which of the app config files actually exist

Safe to re-run: existing files are left alone unless --force is given.`,
	GroupID: "setup",
	RunE:    runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&setupForce, "force", false, "Overwrite an existing manifest")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	return runSetupWithIO(os.Stdout, cat, home)
}

func runSetupWithIO(output io.Writer, cat *catalog, home string) error {
	fmt.Fprintln(output, "=== mcpdeck setup ===")
	fmt.Fprintln(output)

	dir, err := paths.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	fmt.Fprintf(output, "Data directory: %s\n", dir)

	manifestFP, err := paths.ManifestFile()
	if err != nil {
		return err
	}
	written, err := writeDefaultManifest(manifestFP, home, setupForce)
	if err != nil {
		return err
	}
	if written {
		fmt.Fprintf(output, "Wrote sources manifest: %s\n", manifestFP)
	} else {
		fmt.Fprintf(output, "Sources manifest already exists: %s (use --force to rewrite)\n", manifestFP)
	}

	settingsFP, created, err := settings.WriteDefault()
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(output, "Wrote settings: %s\n", settingsFP)
	} else {
		fmt.Fprintf(output, "Settings already exist: %s\n", settingsFP)
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, "Detecting app config files...")
	added, err := cat.sources.Detect(home)
	if err != nil {
		return err
	}
	if len(added) == 0 {
		fmt.Fprintln(output, "  (none found that weren't already registered)")
	}
	for _, src := range added {
		fmt.Fprintf(output, "  + %s (%s)\n", src.Name, src.Path)
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, "Setup complete! Next:")
	fmt.Fprintln(output, "  mcpdeck scan --import   # pull servers out of the detected configs")
	fmt.Fprintln(output, "  mcpdeck                 # browse the catalog")
	return nil
}

// writeDefaultManifest writes a manifest listing the four standard app
// config locations. Existing manifests are preserved unless force is set.
func writeDefaultManifest(fp, home string, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(fp); err == nil {
			return false, nil
		}
	}

	manifest := model.Manifest{}
	ids := map[string]string{
		"Claude Desktop": model.SourceIDClaudeDesktop,
		"VS Code":        model.SourceIDVSCode,
		"Cursor":         model.SourceIDCursor,
		"Windsurf":       model.SourceIDWindsurf,
	}
	for _, loc := range store.KnownLocations(home) {
		manifest.Sources = append(manifest.Sources, model.SourceDescriptor{
			ID:   ids[loc.Name],
			Path: loc.Path,
			Name: loc.Name,
			Icon: string(loc.Icon),
		})
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(fp, data, 0o644); err != nil {
		return false, fmt.Errorf("failed to write manifest: %w", err)
	}
	return true, nil
}
