package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/mcpdeck/mcpdeck/internal/logger"
)

// Link associates one server with one source. The catalog keeps these in a
// single table instead of parallel lists on both entities, so the two sides
// can never disagree.
type Link struct {
	ServerID string `json:"server_id"`
	SourceID string `json:"source_id"`
}

// Links is the persisted server/source relationship table.
type Links struct {
	mu       sync.RWMutex
	pairs    map[Link]bool
	filePath string
}

type linksFile struct {
	Links []Link `json:"links"`
}

// OpenLinks loads the link table, lenient like the other stores.
func OpenLinks(filePath string) *Links {
	l := &Links{
		pairs:    make(map[Link]bool),
		filePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read link table, starting empty", "path", filePath, "error", err)
		}
		return l
	}

	var f linksFile
	if err := json.Unmarshal(data, &f); err != nil {
		logger.Warn("failed to parse link table, starting empty", "path", filePath, "error", err)
		return l
	}

	for _, pair := range f.Links {
		l.pairs[pair] = true
	}
	return l
}

// Save persists the table atomically, sorted for stable diffs.
func (l *Links) Save() error {
	l.mu.RLock()
	f := linksFile{Links: l.sorted()}
	l.mu.RUnlock()

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal link table: %w", err)
	}
	return writeAtomic(l.filePath, data)
}

// Add records a server/source association. Adding an existing pair is a
// no-op. Returns true when the table changed.
func (l *Links) Add(serverID, sourceID string) (bool, error) {
	pair := Link{ServerID: serverID, SourceID: sourceID}
	l.mu.Lock()
	if l.pairs[pair] {
		l.mu.Unlock()
		return false, nil
	}
	l.pairs[pair] = true
	l.mu.Unlock()

	return true, l.Save()
}

// Remove drops a server/source association. Returns true when the table
// changed.
func (l *Links) Remove(serverID, sourceID string) (bool, error) {
	pair := Link{ServerID: serverID, SourceID: sourceID}
	l.mu.Lock()
	if !l.pairs[pair] {
		l.mu.Unlock()
		return false, nil
	}
	delete(l.pairs, pair)
	l.mu.Unlock()

	return true, l.Save()
}

// Linked reports whether the pair exists.
func (l *Links) Linked(serverID, sourceID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pairs[Link{ServerID: serverID, SourceID: sourceID}]
}

// SourcesFor returns the source ids linked to a server, sorted.
func (l *Links) SourcesFor(serverID string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []string
	for pair := range l.pairs {
		if pair.ServerID == serverID {
			out = append(out, pair.SourceID)
		}
	}
	sort.Strings(out)
	return out
}

// ServersFor returns the server ids linked to a source, sorted.
func (l *Links) ServersFor(sourceID string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []string
	for pair := range l.pairs {
		if pair.SourceID == sourceID {
			out = append(out, pair.ServerID)
		}
	}
	sort.Strings(out)
	return out
}

// DropServer removes every link involving the server, used when the server
// is deleted from the catalog.
func (l *Links) DropServer(serverID string) error {
	l.mu.Lock()
	for pair := range l.pairs {
		if pair.ServerID == serverID {
			delete(l.pairs, pair)
		}
	}
	l.mu.Unlock()
	return l.Save()
}

// DropSource removes every link involving the source.
func (l *Links) DropSource(sourceID string) error {
	l.mu.Lock()
	for pair := range l.pairs {
		if pair.SourceID == sourceID {
			delete(l.pairs, pair)
		}
	}
	l.mu.Unlock()
	return l.Save()
}

func (l *Links) sorted() []Link {
	out := make([]Link, 0, len(l.pairs))
	for pair := range l.pairs {
		out = append(out, pair)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ServerID != out[j].ServerID {
			return out[i].ServerID < out[j].ServerID
		}
		return out[i].SourceID < out[j].SourceID
	})
	return out
}
