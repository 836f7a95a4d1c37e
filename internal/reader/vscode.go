package reader

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/mcpdeck/mcpdeck/internal/model"
)

// endpointKeys are the VS Code setting names that may hold an MCP endpoint,
// in preference order. The first present string value wins.
var endpointKeys = []string{
	"claude.mcp.endpoint",
	"claude.mcp.url",
	"anthropic.mcp.endpoint",
}

// FromVSCode parses VS Code's settings.json for MCP endpoints.
//
// settings.json permits // line comments, so the file is read as text and
// comments are stripped before decoding. If a dedicated endpoint setting is
// found it yields a single remote server named "VS Code"; otherwise every
// URL-shaped string value anywhere in the settings becomes a remote record
// named after itself. If the file can't be decoded at all, fall back to a
// raw-text URL scan.
func FromVSCode(path string) []model.Server {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ScanFileForURLs(path, "VS Code", model.SourceVSCode)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(stripLineComments(string(data))), &parsed); err != nil {
		return ScanFileForURLs(path, "VS Code", model.SourceVSCode)
	}

	for _, key := range endpointKeys {
		if url, ok := parsed[key].(string); ok && url != "" {
			return []model.Server{model.NewRemote("VS Code", url, model.SourceVSCode)}
		}
	}

	var servers []model.Server
	for _, url := range urlsInValue(parsed) {
		servers = append(servers, model.NewRemote(url, url, model.SourceVSCode))
	}
	return servers
}

// stripLineComments removes // line comments from JSON-with-comments text.
// A // inside a string literal is left alone, detected by counting quotes
// before the marker: an even count means we're outside a string. This keeps
// the // of a quoted URL intact while still cutting a trailing comment on
// the same line. Escaped quotes are not handled; they don't occur in the
// settings files this reader targets, and a bad strip only demotes the file
// to the raw-text scan.
func stripLineComments(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		offset := 0
		for {
			idx := strings.Index(line[offset:], "//")
			if idx < 0 {
				break
			}
			idx += offset
			if strings.Count(line[:idx], `"`)%2 == 0 {
				lines[i] = line[:idx]
				break
			}
			offset = idx + 2
		}
	}
	return strings.Join(lines, "\n")
}
