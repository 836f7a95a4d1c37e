package reader

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/mcpdeck/mcpdeck/internal/logger"
	"github.com/mcpdeck/mcpdeck/internal/model"
)

// FromClaudeDesktop reads Claude Desktop's claude_desktop_config.json.
//
// The current layout keys local launch specs by server name:
//
//	{"mcpServers": {"github": {"command": "npx", "args": ["-y", "..."]}}}
//
// Each entry becomes a local server. Unlike the other readers there is no
// URL-scan fallback here: the file holds launch commands, not endpoints, so
// a malformed file degrades to zero servers with a warning.
func FromClaudeDesktop(path string) []model.Server {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("failed to read Claude Desktop config", "path", path, "error", err)
		return nil
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		logger.Warn("failed to parse Claude Desktop config", "path", path, "error", err)
		return nil
	}

	entries, ok := parsed["mcpServers"].(map[string]any)
	if !ok {
		logger.Warn("unexpected structure in Claude Desktop config, no mcpServers object", "path", path)
		return nil
	}

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
		cmd, _ := entry["command"].(string)
		servers = append(servers, model.NewLocal(name, cmd, stringSlice(entry["args"]), model.SourceClaudeDesktop))
	}
	return servers
}

// stringSlice converts a decoded JSON array into a string slice, dropping
// non-string elements.
func stringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
