package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcpdeck/mcpdeck/internal/model"
	"github.com/mcpdeck/mcpdeck/internal/store"
)

func TestServerItem_Description(t *testing.T) {
	tests := []struct {
		name   string
		server model.Server
		want   string
	}{
		{"remote", model.NewRemote("r", "https://r.example", ""), "remote · https://r.example"},
		{"local with cmd", model.NewLocal("l", "npx", nil, ""), "local · npx"},
		{"local without cmd", model.Server{Name: "l", Type: model.ServerTypeLocal}, "local"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (serverItem{server: tt.server}).Description(); got != tt.want {
				t.Errorf("Description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDetail(t *testing.T) {
	dir := t.TempDir()
	sources := store.OpenSourceStore(filepath.Join(dir, "sources.json"))
	links := store.OpenLinks(filepath.Join(dir, "links.json"))

	src, err := sources.Create(model.Source{Name: "Cursor", Path: "/p/mcp.json"})
	if err != nil {
		t.Fatalf("Create source: %v", err)
	}
	if _, err := links.Add("srv", src.ID); err != nil {
		t.Fatalf("Add link: %v", err)
	}

	d := Dashboard{sources: sources, links: links}
	srv := model.Server{
		ID:       "srv",
		Name:     "My Server",
		URL:      "https://s.example/sse",
		Type:     model.ServerTypeRemote,
		Source:   model.SourceCursor,
		Subtitle: "a note",
	}

	detail := d.renderDetail(srv)
	for _, want := range []string{"My Server", "https://s.example/sse", "a note", "Cursor (/p/mcp.json)"} {
		if !strings.Contains(detail, want) {
			t.Errorf("detail missing %q:\n%s", want, detail)
		}
	}
}

func TestNewDashboard_ListsCatalog(t *testing.T) {
	dir := t.TempDir()
	servers := store.OpenServerStore(filepath.Join(dir, "servers.json"))
	sources := store.OpenSourceStore(filepath.Join(dir, "sources.json"))
	links := store.OpenLinks(filepath.Join(dir, "links.json"))

	for _, name := range []string{"beta", "alpha"} {
		if _, err := servers.Create(model.Server{Name: name, Type: model.ServerTypeLocal, Cmd: "x"}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	d := NewDashboard(servers, sources, links)
	items := d.list.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].(serverItem).server.Name != "alpha" {
		t.Errorf("items should follow catalog order, got %q first", items[0].(serverItem).server.Name)
	}
}
