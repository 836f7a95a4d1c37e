package model

import "strings"

// ServerType classifies how a server is reached: launched as a local process
// or addressed over the network.
type ServerType string

const (
	ServerTypeLocal  ServerType = "local"
	ServerTypeRemote ServerType = "remote"
)

// ServerSource identifies which application's config file produced a server
// record. Empty for servers the user added by hand.
type ServerSource string

const (
	SourceClaudeDesktop ServerSource = "claude_desktop"
	SourceVSCode        ServerSource = "vscode"
	SourceCursor        ServerSource = "cursor"
	SourceWindsurf      ServerSource = "windsurf"
)

// IconType is the closed set of icon colors the UI understands. Anything
// outside this set would silently render unstyled, so free-form strings are
// not accepted.
type IconType string

const (
	IconGreen  IconType = "green_dot"
	IconPurple IconType = "purple_dot"
	IconBlue   IconType = "blue_dot"
	IconOrange IconType = "orange_dot"
	IconRed    IconType = "red_dot"
)

// Valid reports whether the icon is one of the known dot colors.
func (i IconType) Valid() bool {
	switch i {
	case IconGreen, IconPurple, IconBlue, IconOrange, IconRed:
		return true
	}
	return false
}

// Server represents one MCP server: either a remote endpoint or a local
// launch specification.
type Server struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	URL      string       `json:"url"`
	Type     ServerType   `json:"server_type"`
	Source   ServerSource `json:"server_source,omitempty"`
	Cmd      string       `json:"cmd,omitempty"`
	CmdArgs  []string     `json:"cmd_args,omitempty"`
	IconType IconType     `json:"icon_type,omitempty"`
	Subtitle string       `json:"subtitle,omitempty"`
	Tools    []string     `json:"tools,omitempty"`
}

// DeriveID converts a display name into the record identifier used by the
// reader layer: spaces become underscores, nothing else changes. Collisions
// between different display names are possible and deliberately not resolved
// here; the store layer disambiguates on import.
func DeriveID(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// NewRemote builds a remote server record from a display name and URL.
func NewRemote(name, url string, source ServerSource) Server {
	return Server{
		ID:     DeriveID(name),
		Name:   name,
		URL:    url,
		Type:   ServerTypeRemote,
		Source: source,
	}
}

// NewLocal builds a local server record from a display name and launch command.
func NewLocal(name, cmd string, args []string, source ServerSource) Server {
	return Server{
		ID:      DeriveID(name),
		Name:    name,
		Type:    ServerTypeLocal,
		Source:  source,
		Cmd:     cmd,
		CmdArgs: args,
	}
}

// Validate checks the record invariant: a remote server must carry a URL.
// Local servers without a command are allowed; some configs only name the
// server and fill in launch details elsewhere.
func (s Server) Validate() error {
	if s.Type == ServerTypeRemote && s.URL == "" {
		return ErrRemoteWithoutURL
	}
	return nil
}

// IsLocal reports whether the server is launched as a local process.
func (s Server) IsLocal() bool {
	return s.Type == ServerTypeLocal
}
