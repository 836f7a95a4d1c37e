// Package store persists the mcpdeck catalog: servers, sources, and the
// links between them. Each piece lives in its own JSON file under the data
// directory and is written atomically (temp file + rename).
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

// ServerStore holds the persisted server catalog.
type ServerStore struct {
	mu       sync.RWMutex
	servers  map[string]model.Server
	selected string
	filePath string
}

// serversFile is the on-disk shape of servers.json.
type serversFile struct {
	Servers          []model.Server `json:"servers"`
	SelectedServerID string         `json:"selected_server_id,omitempty"`
}

// OpenServerStore loads the server catalog from the given file. A missing
// file yields an empty store; a corrupt file is logged and also yields an
// empty store, so a damaged catalog never blocks startup.
func OpenServerStore(filePath string) *ServerStore {
	s := &ServerStore{
		servers:  make(map[string]model.Server),
		filePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read server catalog, starting empty", "path", filePath, "error", err)
		}
		return s
	}

	var f serversFile
	if err := json.Unmarshal(data, &f); err != nil {
		logger.Warn("failed to parse server catalog, starting empty", "path", filePath, "error", err)
		return s
	}

	for _, srv := range f.Servers {
		s.servers[srv.ID] = srv
	}
	if _, ok := s.servers[f.SelectedServerID]; ok {
		s.selected = f.SelectedServerID
	}
	return s
}

// Save persists the catalog atomically.
func (s *ServerStore) Save() error {
	s.mu.RLock()
	f := serversFile{
		Servers:          sortedServers(s.servers),
		SelectedServerID: s.selected,
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal server catalog: %w", err)
	}
	return writeAtomic(s.filePath, data)
}

// Create adds a server with a freshly generated id derived from the name and
// saves the catalog.
func (s *ServerStore) Create(srv model.Server) (model.Server, error) {
	if err := srv.Validate(); err != nil {
		return model.Server{}, err
	}

	s.mu.Lock()
	srv.ID = s.uniqueID(srv.Name)
	s.servers[srv.ID] = srv
	s.mu.Unlock()

	if err := s.Save(); err != nil {
		return model.Server{}, err
	}
	return srv, nil
}

// Update applies a partial update to a server. Returns false when the id is
// unknown.
func (s *ServerStore) Update(id string, upd model.ServerUpdate) (bool, error) {
	s.mu.Lock()
	srv, ok := s.servers[id]
	if !ok {
		s.mu.Unlock()
		return false, nil
	}
	upd.Apply(&srv)
	s.servers[id] = srv
	s.mu.Unlock()

	return true, s.Save()
}

// Delete removes a server. Returns false when the id is unknown.
func (s *ServerStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	if _, ok := s.servers[id]; !ok {
		s.mu.Unlock()
		return false, nil
	}
	delete(s.servers, id)
	if s.selected == id {
		s.selected = ""
	}
	s.mu.Unlock()

	return true, s.Save()
}

// Get returns a server by id.
func (s *ServerStore) Get(id string) (model.Server, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	srv, ok := s.servers[id]
	return srv, ok
}

// All returns every server, sorted by name for stable listings.
func (s *ServerStore) All() []model.Server {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedServers(s.servers)
}

// FindByURL returns the first server with the given non-empty URL.
func (s *ServerStore) FindByURL(url string) (model.Server, bool) {
	if url == "" {
		return model.Server{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, srv := range sortedServers(s.servers) {
		if srv.URL == url {
			return srv, true
		}
	}
	return model.Server{}, false
}

// FindLocal returns the first local server with the given name and launch
// command. Local servers have no URL, so this is how duplicates of them are
// recognized.
func (s *ServerStore) FindLocal(name, cmd string) (model.Server, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, srv := range sortedServers(s.servers) {
		if srv.IsLocal() && srv.Name == name && srv.Cmd == cmd {
			return srv, true
		}
	}
	return model.Server{}, false
}

// Select marks a server as the current selection. An empty id clears it.
func (s *ServerStore) Select(id string) (bool, error) {
	s.mu.Lock()
	if id != "" {
		if _, ok := s.servers[id]; !ok {
			s.mu.Unlock()
			return false, nil
		}
	}
	s.selected = id
	s.mu.Unlock()

	return true, s.Save()
}

// Selected returns the currently selected server, if any.
func (s *ServerStore) Selected() (model.Server, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	srv, ok := s.servers[s.selected]
	return srv, ok
}

// uniqueID derives a catalog id from a display name: lowercased, spaces to
// underscores, with a numeric suffix on collision. Names that produce no
// usable slug get a random id instead. Caller must hold the lock.
func (s *ServerStore) uniqueID(name string) string {
	base := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	if base == "" {
		return uuid.NewString()[:8]
	}
	if _, taken := s.servers[base]; !taken {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d", base, n)
		if _, taken := s.servers[candidate]; !taken {
			return candidate
		}
	}
}

func sortedServers(m map[string]model.Server) []model.Server {
	out := make([]model.Server, 0, len(m))
	for _, srv := range m {
		out = append(out, srv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// writeAtomic writes data via a temp file and rename so readers never see a
// half-written catalog.
func writeAtomic(fp string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tmp := fp + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, fp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename into place: %w", err)
	}
	return nil
}
