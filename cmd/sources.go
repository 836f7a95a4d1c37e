package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/model"
)

var sourceAddIcon string

var sourcesCmd = &cobra.Command{
	Use:     "sources",
	Short:   "Manage the source catalog",
	Long:    `Sources are the external application config files mcpdeck reads servers from and syncs servers into.`,
	GroupID: "catalog",
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return listSources(os.Stdout, cat)
	},
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "Register a source config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return addSource(os.Stdout, cat, args[0], args[1])
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove <source-id>",
	Short: "Remove a source from the catalog",
	Long:  `Removes the catalog entry only; the application's config file is not touched.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return removeSource(os.Stdout, cat, args[0])
	},
}

var sourcesDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Auto-detect app config files in standard locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return detectSources(os.Stdout, cat)
	},
}

func init() {
	sourcesAddCmd.Flags().StringVar(&sourceAddIcon, "icon", string(model.IconPurple), "Icon color")

	sourcesCmd.AddCommand(sourcesListCmd, sourcesAddCmd, sourcesRemoveCmd, sourcesDetectCmd)
	rootCmd.AddCommand(sourcesCmd)
}

func listSources(w io.Writer, cat *catalog) error {
	sources := cat.sources.All()
	if len(sources) == 0 {
		fmt.Fprintln(w, "No sources registered. Try `mcpdeck sources detect` or `mcpdeck sources add`.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPATH\tSERVERS")
	for _, src := range sources {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			src.ID, src.Name, src.Path, len(cat.links.ServersFor(src.ID)))
	}
	return tw.Flush()
}

func addSource(w io.Writer, cat *catalog, name, path string) error {
	icon := model.IconType(sourceAddIcon)
	if !icon.Valid() {
		return fmt.Errorf("unknown icon %q", sourceAddIcon)
	}
	if cat.sources.HasPath(path) {
		return fmt.Errorf("a source for %s is already registered", path)
	}

	src, err := cat.sources.Create(model.Source{Name: name, Path: path, IconType: icon})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Added %s (%s)\n", src.Name, src.ID)
	return nil
}

func removeSource(w io.Writer, cat *catalog, id string) error {
	ok, err := cat.sources.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no source with id %q", id)
	}
	if err := cat.links.DropSource(id); err != nil {
		return err
	}
	fmt.Fprintf(w, "Removed %s\n", id)
	return nil
}

func detectSources(w io.Writer, cat *catalog) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}

	added, err := cat.sources.Detect(home)
	if err != nil {
		return err
	}
	if len(added) == 0 {
		fmt.Fprintln(w, "No new sources found.")
		return nil
	}
	for _, src := range added {
		fmt.Fprintf(w, "Detected %s (%s)\n", src.Name, src.Path)
	}
	return nil
}
