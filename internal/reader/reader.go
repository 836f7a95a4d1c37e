// Package reader collects MCP server records referenced by external
// application config files.
//
// Each supported application (Claude Desktop, VS Code, Cursor, Windsurf) has
// a small specialized reader that knows where inside that app's JSON file
// the servers usually live. The schemas are third-party, semi-documented and
// evolving, so every reader is defensive: it salvages what it can, logs a
// warning for the rest, and never fails the whole pass over one bad file.
// When structured parsing breaks down entirely there is a last-resort regex
// scan for URL-shaped text, on the principle that a false positive is cheap
// and a silently missed server is not.
//
// Only manifest-level problems surface as errors; see Servers.
package reader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mcpdeck/mcpdeck/internal/logger"
	"github.com/mcpdeck/mcpdeck/internal/model"
)

// Manifest failure modes. Everything below the manifest degrades gracefully
// instead of erroring.
var (
	ErrManifestNotFound = errors.New("sources manifest not found")
	ErrManifestCorrupt  = errors.New("sources manifest is not valid JSON")
)

// Normalizer turns one application's config file into server records.
// Implementations never fail; they return whatever could be salvaged.
type Normalizer func(path string) []model.Server

// normalizers maps manifest source ids to their specialized readers.
var normalizers = map[string]Normalizer{
	model.SourceIDClaudeDesktop: FromClaudeDesktop,
	model.SourceIDVSCode:        FromVSCode,
	model.SourceIDCursor:        FromCursor,
	model.SourceIDWindsurf:      FromWindsurf,
}

// ReadManifest loads and decodes the sources manifest.
func ReadManifest(path string) (model.Manifest, error) {
	var m model.Manifest

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return m, fmt.Errorf("failed to read sources manifest: %w", err)
	}

	// Decode generically first: a manifest that is valid JSON but has the
	// wrong shape is a lenient no-op, not a failure.
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return m, fmt.Errorf("%w: %v", ErrManifestCorrupt, err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return m, nil
	}
	list, ok := obj["sources"].([]any)
	if !ok {
		return m, nil
	}
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var d model.SourceDescriptor
		d.ID, _ = entry["id"].(string)
		d.Path, _ = entry["path"].(string)
		d.Name, _ = entry["name"].(string)
		d.Icon, _ = entry["icon"].(string)
		m.Sources = append(m.Sources, d)
	}
	return m, nil
}

// Servers reads the sources manifest and returns every server referenced by
// the files it lists, deduplicated by URL (first occurrence wins; local
// servers have no URL and are never deduplicated).
//
// The manifest itself is the only hard dependency: a missing file returns an
// error wrapping ErrManifestNotFound and invalid JSON returns an error
// wrapping ErrManifestCorrupt. Per-source problems only shrink the result.
func Servers(manifestPath string) ([]model.Server, error) {
	return Collect(manifestPath, true)
}

// Collect is Servers with the dedup pass made optional.
func Collect(manifestPath string, dedup bool) ([]model.Server, error) {
	manifest, err := ReadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	var all []model.Server
	for _, src := range manifest.Sources {
		if src.ID == "" || src.Path == "" {
			logger.Warn("skipping manifest entry without id or path", "id", src.ID, "path", src.Path)
			continue
		}

		normalize, ok := normalizers[src.ID]
		if !ok {
			// Unknown application: we can't parse its schema, but a literal
			// URL in the file is still worth surfacing.
			logger.Debug("unknown source id, using generic URL scan", "id", src.ID, "path", src.Path)
			all = append(all, ScanFileForURLs(src.Path, src.Name, "")...)
			continue
		}
		all = append(all, normalize(src.Path)...)
	}

	if dedup {
		return Deduplicate(all), nil
	}
	return all, nil
}

// Deduplicate drops later records whose URL was already seen, preserving
// order. Records without a URL (local servers) always survive.
func Deduplicate(servers []model.Server) []model.Server {
	seen := make(map[string]bool, len(servers))
	unique := make([]model.Server, 0, len(servers))
	for _, srv := range servers {
		if srv.URL != "" {
			if seen[srv.URL] {
				continue
			}
			seen[srv.URL] = true
		}
		unique = append(unique, srv)
	}
	return unique
}
