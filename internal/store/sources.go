package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mcpdeck/mcpdeck/internal/logger"
	"github.com/mcpdeck/mcpdeck/internal/model"
)

// SourceStore holds the persisted source catalog.
type SourceStore struct {
	mu       sync.RWMutex
	sources  map[string]model.Source
	filePath string
}

type sourcesFile struct {
	Sources []model.Source `json:"sources"`
}

// OpenSourceStore loads the source catalog from the given file, with the
// same lenient behavior as OpenServerStore.
func OpenSourceStore(filePath string) *SourceStore {
	s := &SourceStore{
		sources:  make(map[string]model.Source),
		filePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read source catalog, starting empty", "path", filePath, "error", err)
		}
		return s
	}

	var f sourcesFile
	if err := json.Unmarshal(data, &f); err != nil {
		logger.Warn("failed to parse source catalog, starting empty", "path", filePath, "error", err)
		return s
	}

	for _, src := range f.Sources {
		s.sources[src.ID] = src
	}
	return s
}

// Save persists the catalog atomically.
func (s *SourceStore) Save() error {
	s.mu.RLock()
	f := sourcesFile{Sources: sortedSources(s.sources)}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal source catalog: %w", err)
	}
	return writeAtomic(s.filePath, data)
}

// Create adds a source with a generated id and saves the catalog.
func (s *SourceStore) Create(src model.Source) (model.Source, error) {
	s.mu.Lock()
	src.ID = s.uniqueID(src.Name)
	if src.IconType == "" {
		src.IconType = model.IconPurple
	}
	s.sources[src.ID] = src
	s.mu.Unlock()

	if err := s.Save(); err != nil {
		return model.Source{}, err
	}
	return src, nil
}

// Update applies a partial update to a source.
func (s *SourceStore) Update(id string, upd model.SourceUpdate) (bool, error) {
	s.mu.Lock()
	src, ok := s.sources[id]
	if !ok {
		s.mu.Unlock()
		return false, nil
	}
	upd.Apply(&src)
	s.sources[id] = src
	s.mu.Unlock()

	return true, s.Save()
}

// Delete removes a source.
func (s *SourceStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	if _, ok := s.sources[id]; !ok {
		s.mu.Unlock()
		return false, nil
	}
	delete(s.sources, id)
	s.mu.Unlock()

	return true, s.Save()
}

// Get returns a source by id.
func (s *SourceStore) Get(id string) (model.Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, ok := s.sources[id]
	return src, ok
}

// All returns every source, sorted by name.
func (s *SourceStore) All() []model.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedSources(s.sources)
}

// HasPath reports whether a source with the given config path is already
// registered.
func (s *SourceStore) HasPath(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, src := range s.sources {
		if src.Path == path {
			return true
		}
	}
	return false
}

// KnownLocation describes one well-known per-app config file to probe during
// detection.
type KnownLocation struct {
	Name string
	Path string
	Icon model.IconType
}

// KnownLocations returns the standard config file locations for the
// supported applications, resolved against the given home directory.
func KnownLocations(home string) []KnownLocation {
	return []KnownLocation{
		{"Claude Desktop", filepath.Join(home, ".config", "claude-desktop", "claude_desktop_config.json"), model.IconPurple},
		{"VS Code", filepath.Join(home, ".config", "Code", "User", "settings.json"), model.IconBlue},
		{"Cursor", filepath.Join(home, ".cursor", "mcp.json"), model.IconGreen},
		{"Windsurf", filepath.Join(home, ".codeium", "windsurf", "mcp_config.json"), model.IconOrange},
	}
}

// Detect probes the well-known config locations and registers any file that
// exists and isn't already in the catalog. Returns the newly added sources.
func (s *SourceStore) Detect(home string) ([]model.Source, error) {
	var added []model.Source
	for _, loc := range KnownLocations(home) {
		if _, err := os.Stat(loc.Path); err != nil {
			continue
		}
		if s.HasPath(loc.Path) {
			continue
		}
		src, err := s.Create(model.Source{Name: loc.Name, Path: loc.Path, IconType: loc.Icon})
		if err != nil {
			return added, err
		}
		added = append(added, src)
	}
	return added, nil
}

// uniqueID mirrors ServerStore.uniqueID for the source namespace.
// Caller must hold the lock.
func (s *SourceStore) uniqueID(name string) string {
	base := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	if base == "" {
		return uuid.NewString()[:8]
	}
	if _, taken := s.sources[base]; !taken {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d", base, n)
		if _, taken := s.sources[candidate]; !taken {
			return candidate
		}
	}
}

func sortedSources(m map[string]model.Source) []model.Source {
	out := make([]model.Source, 0, len(m))
	for _, src := range m {
		out = append(out, src)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
