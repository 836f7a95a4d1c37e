package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync <server-id> <source-id>",
	Short: "Write a server entry into a source's config file",
	Long: `Adds the server to the source's own config file (under its "servers"
array) and records the link. Syncing a server that is already present
in the file is a no-op.`,
	GroupID: "catalog",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return runSync(os.Stdout, cat, args[0], args[1])
	},
}

var unsyncCmd = &cobra.Command{
	Use:     "unsync <server-id> <source-id>",
	Short:   "Remove a server entry from a source's config file",
	GroupID: "catalog",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return runUnsync(os.Stdout, cat, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(syncCmd, unsyncCmd)
}

func runSync(w io.Writer, cat *catalog, serverID, sourceID string) error {
	srv, ok := cat.servers.Get(serverID)
	if !ok {
		return fmt.Errorf("no server with id %q", serverID)
	}
	src, ok := cat.sources.Get(sourceID)
	if !ok {
		return fmt.Errorf("no source with id %q", sourceID)
	}

	if err := store.SyncServer(src, srv); err != nil {
		return fmt.Errorf("failed to sync %s into %s: %w", srv.Name, src.Path, err)
	}
	if _, err := cat.links.Add(serverID, sourceID); err != nil {
		return err
	}

	fmt.Fprintf(w, "Synced %s into %s\n", srv.Name, src.Path)
	return nil
}

func runUnsync(w io.Writer, cat *catalog, serverID, sourceID string) error {
	srv, ok := cat.servers.Get(serverID)
	if !ok {
		return fmt.Errorf("no server with id %q", serverID)
	}
	src, ok := cat.sources.Get(sourceID)
	if !ok {
		return fmt.Errorf("no source with id %q", sourceID)
	}

	if err := store.UnsyncServer(src, srv); err != nil {
		return fmt.Errorf("failed to remove %s from %s: %w", srv.Name, src.Path, err)
	}
	if _, err := cat.links.Remove(serverID, sourceID); err != nil {
		return err
	}

	fmt.Fprintf(w, "Removed %s from %s\n", srv.Name, src.Path)
	return nil
}
