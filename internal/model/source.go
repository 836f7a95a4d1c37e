package model

import "errors"

// ErrRemoteWithoutURL is returned by Server.Validate for remote servers
// missing an endpoint.
var ErrRemoteWithoutURL = errors.New("remote server requires a url")

// Well-known source descriptor ids. The reader dispatches on these; anything
// else falls back to a generic URL scan of the file.
const (
	SourceIDClaudeDesktop = "claude-desktop"
	SourceIDVSCode        = "vscode"
	SourceIDCursor        = "cursor"
	SourceIDWindsurf      = "windsurf"
)

// Source represents one external application config file that may reference
// MCP servers (e.g. an editor's settings file).
type Source struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	IconType IconType `json:"icon_type,omitempty"`
}

// SourceDescriptor is one entry of the sources manifest consumed by the
// reader. Name and Icon are passed through opaquely.
type SourceDescriptor struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Name string `json:"name,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// Manifest is the on-disk shape of mcp_server_sources.json, the only file
// contract the reader subsystem consumes.
type Manifest struct {
	Sources []SourceDescriptor `json:"sources"`
}
