package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/paths"
)

var cleanSkipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove mcpdeck state files",
	Long: `Removes the persisted catalog (servers.json, sources.json, links.json).
The sources manifest, settings, and the applications' own config files
are left alone.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	GroupID: "setup",
	RunE:    runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin, os.Stdout)
}

func runCleanWithReader(input io.Reader, output io.Writer) error {
	files := make([]string, 0, 3)
	for _, resolve := range []func() (string, error){paths.ServersFile, paths.SourcesFile, paths.LinksFile} {
		fp, err := resolve()
		if err != nil {
			return err
		}
		if _, err := os.Stat(fp); err == nil {
			files = append(files, fp)
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(output, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(output, "This will remove:")
	for _, fp := range files {
		fmt.Fprintf(output, "  - %s\n", fp)
	}

	if !cleanSkipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Fprintln(output, "Aborted.")
			return nil
		}
	}

	removed := 0
	for _, fp := range files {
		if err := os.Remove(fp); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error removing %s: %v\n", fp, err)
			continue
		}
		removed++
	}

	fmt.Fprintln(output)
	fmt.Fprintf(output, "Removed %d file(s).\n", removed)
	return nil
}
