package reader

import (
	"encoding/json"
	"os"

	"github.com/mcpdeck/mcpdeck/internal/model"
)

// FromWindsurf reads Windsurf's mcp_config.json (part of Codeium).
//
// The layout matches Cursor's dual schema, with one extra salvage rule for
// the legacy list: entries without a usable url are still kept as local
// servers when they carry a launch command, with the display name taken from
// "name", then "label", then "Unnamed".
func FromWindsurf(path string) []model.Server {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ScanFileForURLs(path, "Windsurf", model.SourceWindsurf)
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return ScanFileForURLs(path, "Windsurf", model.SourceWindsurf)
	}

	if entries, ok := parsed["mcpServers"].(map[string]any); ok {
		return serversFromEntryMap(entries, model.SourceWindsurf)
	}

	var servers []model.Server
	for _, entry := range legacyServerList(parsed) {
		name, _ := entry["name"].(string)

		if url, ok := entry["url"].(string); ok && url != "" {
			if name == "" {
				name = url
			}
			servers = append(servers, model.NewRemote(name, url, model.SourceWindsurf))
			continue
		}

		cmd, _ := entry["command"].(string)
		if cmd == "" {
			cmd, _ = entry["cmd"].(string)
		}
		if cmd == "" {
			continue
		}
		if name == "" {
			name, _ = entry["label"].(string)
		}
		if name == "" {
			name = "Unnamed"
		}
		servers = append(servers, model.NewLocal(name, cmd, stringSlice(entry["args"]), model.SourceWindsurf))
	}

	if len(servers) == 0 {
		for _, url := range urlsInValue(parsed) {
			servers = append(servers, model.NewRemote(url, url, model.SourceWindsurf))
		}
	}
	return servers
}
