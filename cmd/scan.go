package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/model"
	"github.com/mcpdeck/mcpdeck/internal/reader"
	"github.com/mcpdeck/mcpdeck/internal/settings"
)

var (
	scanManifest string
	scanImport   bool
	scanNoDedup  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan app config files for MCP servers",
	Long: `Reads the sources manifest and collects every server referenced by the
config files it lists. Results are printed; with --import they are also
merged into the catalog and linked to the source that produced them.

Problems inside individual config files never fail the scan; they are
logged and the scan moves on with whatever it could salvage.`,
	GroupID: "catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return runScan(os.Stdout, cat)
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanManifest, "manifest", "", "Sources manifest path (default: data dir)")
	scanCmd.Flags().BoolVar(&scanImport, "import", false, "Merge found servers into the catalog")
	scanCmd.Flags().BoolVar(&scanNoDedup, "no-dedup", false, "Keep duplicate URLs in the output")
	rootCmd.AddCommand(scanCmd)
}

func runScan(w io.Writer, cat *catalog) error {
	cfg, err := settings.Load()
	if err != nil {
		return err
	}

	manifest := scanManifest
	if manifest == "" {
		if manifest, err = cfg.ManifestPath(); err != nil {
			return err
		}
	}

	dedup := cfg.DedupEnabled() && !scanNoDedup
	found, err := reader.Collect(manifest, dedup)
	if err != nil {
		return err
	}

	if len(found) == 0 {
		fmt.Fprintln(w, "No servers found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tENDPOINT/CMD\tFROM")
	for _, srv := range found {
		endpoint := srv.URL
		if srv.IsLocal() {
			endpoint = srv.Cmd
			if len(srv.CmdArgs) > 0 {
				endpoint += " " + strings.Join(srv.CmdArgs, " ")
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", srv.Name, srv.Type, endpoint, srv.Source)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !scanImport {
		return nil
	}
	return importServers(w, cat, found)
}

// importServers merges scan results into the catalog. Servers already
// present are skipped: remotes match by URL, locals by name and launch
// command (they carry no URL). Everything else is created and linked to the
// catalog source matching its producing application, when one exists.
func importServers(w io.Writer, cat *catalog, found []model.Server) error {
	imported := 0
	for _, srv := range found {
		if srv.IsLocal() {
			if _, exists := cat.servers.FindLocal(srv.Name, srv.Cmd); exists {
				continue
			}
		} else if _, exists := cat.servers.FindByURL(srv.URL); exists {
			continue
		}

		created, err := cat.servers.Create(srv)
		if err != nil {
			return fmt.Errorf("failed to import %q: %w", srv.Name, err)
		}
		imported++

		if sourceID, ok := catalogSourceFor(cat, srv.Source); ok {
			if _, err := cat.links.Add(created.ID, sourceID); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(w, "\nImported %d server(s).\n", imported)
	return nil
}

// catalogSourceFor maps a record's producing application to a registered
// catalog source by display name.
func catalogSourceFor(cat *catalog, from model.ServerSource) (string, bool) {
	names := map[model.ServerSource]string{
		model.SourceClaudeDesktop: "Claude Desktop",
		model.SourceVSCode:        "VS Code",
		model.SourceCursor:        "Cursor",
		model.SourceWindsurf:      "Windsurf",
	}
	name, ok := names[from]
	if !ok {
		return "", false
	}
	for _, src := range cat.sources.All() {
		if src.Name == name {
			return src.ID, true
		}
	}
	return "", false
}
