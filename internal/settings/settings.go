// Package settings loads the app-level configuration from
// ~/.mcpdeck/config.yaml. Everything has a sensible default; a missing file
// is not an error.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcpdeck/mcpdeck/internal/paths"
)

// Settings holds user-tunable behavior for mcpdeck.
type Settings struct {
	// Manifest overrides the default sources manifest location.
	Manifest string `yaml:"manifest,omitempty"`
	// Dedup controls whether scan results are deduplicated by URL.
	// Defaults to true when unset.
	Dedup *bool `yaml:"dedup,omitempty"`
	// Debug enables debug-level logging.
	Debug bool `yaml:"debug,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{}
}

// DedupEnabled resolves the dedup toggle, defaulting to true.
func (s Settings) DedupEnabled() bool {
	return s.Dedup == nil || *s.Dedup
}

// ManifestPath resolves the manifest location: the settings override when
// present, otherwise the default file in the data directory.
func (s Settings) ManifestPath() (string, error) {
	if s.Manifest != "" {
		return s.Manifest, nil
	}
	return paths.ManifestFile()
}

// Load reads settings from the default location. A missing file yields
// defaults; a malformed file is an error so typos don't silently vanish.
func Load() (Settings, error) {
	fp, err := paths.SettingsFile()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(fp)
}

// LoadFrom reads settings from an explicit path.
func LoadFrom(fp string) (Settings, error) {
	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// WriteDefault writes a commented starter config if none exists yet.
// Returns the path written, or the existing path with ok=false.
func WriteDefault() (string, bool, error) {
	fp, err := paths.SettingsFile()
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(fp); err == nil {
		return fp, false, nil
	}
	if _, err := paths.EnsureDataDir(); err != nil {
		return "", false, err
	}
	content := `# mcpdeck settings
#
# manifest: /path/to/mcp_server_sources.json   # override manifest location
# dedup: true                                  # drop duplicate URLs on scan
# debug: false
`
	if err := os.WriteFile(fp, []byte(content), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write settings: %w", err)
	}
	return fp, true, nil
}
