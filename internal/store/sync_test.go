package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mcpdeck/mcpdeck/internal/model"
	"github.com/mcpdeck/mcpdeck/internal/testutil"
)

func readSourceConfig(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return config
}

func TestSyncServer_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	src := model.Source{ID: "cursor", Name: "Cursor", Path: path}
	srv := model.NewRemote("srv", "https://s.example/sse", "")

	if err := SyncServer(src, srv); err != nil {
		t.Fatalf("SyncServer: %v", err)
	}

	config := readSourceConfig(t, path)
	entries, ok := config["servers"].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %v", config["servers"])
	}
	entry := entries[0].(map[string]any)
	if entry["name"] != "srv" || entry["url"] != "https://s.example/sse" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestSyncServer_DuplicateURLIsNoOp(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "mcp.json",
		`{"servers": [{"name": "existing", "url": "https://s.example/sse"}]}`)
	src := model.Source{ID: "cursor", Name: "Cursor", Path: path}
	srv := model.NewRemote("renamed", "https://s.example/sse", "")

	if err := SyncServer(src, srv); err != nil {
		t.Fatalf("SyncServer: %v", err)
	}

	entries := readSourceConfig(t, path)["servers"].([]any)
	if len(entries) != 1 {
		t.Errorf("duplicate url should not add an entry, got %d", len(entries))
	}
	if entries[0].(map[string]any)["name"] != "existing" {
		t.Error("existing entry should be left untouched")
	}
}

func TestSyncServer_PreservesUnrelatedKeys(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "mcp.json",
		`{"theme": "dark", "servers": []}`)
	src := model.Source{ID: "cursor", Name: "Cursor", Path: path}

	if err := SyncServer(src, model.NewRemote("srv", "https://s.example", "")); err != nil {
		t.Fatalf("SyncServer: %v", err)
	}

	config := readSourceConfig(t, path)
	if config["theme"] != "dark" {
		t.Errorf("unrelated key lost: %v", config)
	}
}

func TestUnsyncServer_RemovesMatchingEntries(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "mcp.json", `{
		"servers": [
			{"name": "keep", "url": "https://keep.example"},
			{"name": "drop", "url": "https://drop.example"}
		]
	}`)
	src := model.Source{ID: "cursor", Name: "Cursor", Path: path}

	if err := UnsyncServer(src, model.NewRemote("drop", "https://drop.example", "")); err != nil {
		t.Fatalf("UnsyncServer: %v", err)
	}

	entries := readSourceConfig(t, path)["servers"].([]any)
	if len(entries) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(entries))
	}
	if entries[0].(map[string]any)["name"] != "keep" {
		t.Errorf("wrong entry removed: %v", entries[0])
	}
}

func TestUnsyncServer_NoOpCases(t *testing.T) {
	srv := model.NewRemote("srv", "https://absent.example", "")

	t.Run("missing file", func(t *testing.T) {
		src := model.Source{Path: filepath.Join(t.TempDir(), "nope.json")}
		if err := UnsyncServer(src, srv); err != nil {
			t.Errorf("missing file should be a no-op: %v", err)
		}
	})

	t.Run("no servers array", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "mcp.json", `{"theme": "dark"}`)
		if err := UnsyncServer(model.Source{Path: path}, srv); err != nil {
			t.Errorf("config without servers should be a no-op: %v", err)
		}
		if readSourceConfig(t, path)["theme"] != "dark" {
			t.Error("file should be untouched")
		}
	})

	t.Run("url absent", func(t *testing.T) {
		dir := t.TempDir()
		before := `{"servers": [{"name": "other", "url": "https://other.example"}]}`
		path := testutil.WriteFile(t, dir, "mcp.json", before)
		if err := UnsyncServer(model.Source{Path: path}, srv); err != nil {
			t.Errorf("absent url should be a no-op: %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != before {
			t.Error("no-op unsync must not rewrite the file")
		}
	})
}
