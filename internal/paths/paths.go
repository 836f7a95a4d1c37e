// Package paths resolves the per-user mcpdeck data directory and the files
// inside it. The directory defaults to ~/.mcpdeck and can be relocated with
// the MCPDECK_HOME environment variable (tests rely on this).
package paths

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the data directory when set.
const EnvHome = "MCPDECK_HOME"

// DataDir returns the mcpdeck data directory, without creating it.
func DataDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mcpdeck"), nil
}

// EnsureDataDir returns the data directory, creating it if needed.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// ServersFile returns the path of the persisted server catalog.
func ServersFile() (string, error) { return inDataDir("servers.json") }

// SourcesFile returns the path of the persisted source catalog.
func SourcesFile() (string, error) { return inDataDir("sources.json") }

// LinksFile returns the path of the server/source link table.
func LinksFile() (string, error) { return inDataDir("links.json") }

// ManifestFile returns the path of the sources manifest consumed by the reader.
func ManifestFile() (string, error) { return inDataDir("mcp_server_sources.json") }

// SettingsFile returns the path of the YAML settings file.
func SettingsFile() (string, error) { return inDataDir("config.yaml") }

func inDataDir(name string) (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
