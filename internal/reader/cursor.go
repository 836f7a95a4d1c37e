package reader

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/mcpdeck/mcpdeck/internal/model"
)

// FromCursor reads Cursor's ~/.cursor/mcp.json.
//
// The current schema keys entries by name under "mcpServers"; an entry with
// a string "url" is a remote server, anything else is treated as a local
// launch spec built from "command"/"args". Older Cursor versions wrote a
// flat {"servers": [{"name", "url"}]} list instead, which is tried when the
// primary key is absent. A file that isn't JSON at all gets the raw-text
// URL scan.
func FromCursor(path string) []model.Server {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ScanFileForURLs(path, "Cursor", model.SourceCursor)
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return ScanFileForURLs(path, "Cursor", model.SourceCursor)
	}

	if entries, ok := parsed["mcpServers"].(map[string]any); ok {
		return serversFromEntryMap(entries, model.SourceCursor)
	}

	var servers []model.Server
	for _, entry := range legacyServerList(parsed) {
		url, _ := entry["url"].(string)
		if url == "" {
			continue
		}
		name, _ := entry["name"].(string)
		if name == "" {
			name = url
		}
		servers = append(servers, model.NewRemote(name, url, model.SourceCursor))
	}

	// Neither schema matched (or the legacy list held nothing usable):
	// salvage any URL-shaped values from the parsed structure.
	if len(servers) == 0 {
		for _, url := range urlsInValue(parsed) {
			servers = append(servers, model.NewRemote(url, url, model.SourceCursor))
		}
	}
	return servers
}

// serversFromEntryMap converts a "mcpServers" object into server records:
// remote when the entry carries a string url, local otherwise. Names are
// visited sorted so output order is stable across runs.
func serversFromEntryMap(entries map[string]any, source model.ServerSource) []model.Server {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var servers []model.Server
	for _, name := range names {
		entry, ok := entries[name].(map[string]any)
		if !ok {
			continue
		}
		if url, ok := entry["url"].(string); ok && url != "" {
			servers = append(servers, model.NewRemote(name, url, source))
			continue
		}
		cmd, _ := entry["command"].(string)
		servers = append(servers, model.NewLocal(name, cmd, stringSlice(entry["args"]), source))
	}
	return servers
}

// legacyServerList pulls the pre-mcpServers {"servers": [...]} list out of a
// parsed config, returning only the entries that are objects.
func legacyServerList(parsed map[string]any) []map[string]any {
	raw, ok := parsed["servers"].([]any)
	if !ok {
		return nil
	}
	var entries []map[string]any
	for _, item := range raw {
		if entry, ok := item.(map[string]any); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}
