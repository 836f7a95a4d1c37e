package cmd

import (
	"fmt"

	"github.com/mcpdeck/mcpdeck/internal/paths"
	"github.com/mcpdeck/mcpdeck/internal/store"
)

// catalog bundles the three stores most commands need.
type catalog struct {
	servers *store.ServerStore
	sources *store.SourceStore
	links   *store.Links
}

// openCatalog resolves the data-dir file paths and opens all stores.
// Opening never fails on missing or damaged files (the stores are lenient);
// only path resolution can error.
func openCatalog() (*catalog, error) {
	serversFP, err := paths.ServersFile()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	sourcesFP, err := paths.SourcesFile()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	linksFP, err := paths.LinksFile()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	return &catalog{
		servers: store.OpenServerStore(serversFP),
		sources: store.OpenSourceStore(sourcesFP),
		links:   store.OpenLinks(linksFP),
	}, nil
}
