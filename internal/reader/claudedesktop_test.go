package reader

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mcpdeck/mcpdeck/internal/model"
	"github.com/mcpdeck/mcpdeck/internal/testutil"
)

func TestFromClaudeDesktop_LocalServers(t *testing.T) {
	testutil.Quiet(t)
	dir := t.TempDir()
	fp := testutil.WriteFile(t, dir, "claude_desktop_config.json", `{
		"mcpServers": {
			"A": {"command": "x", "args": ["y"]}
		}
	}`)

	servers := FromClaudeDesktop(fp)
	if len(servers) != 1 {
		t.Fatalf("expected 1 server, got %d", len(servers))
	}
	srv := servers[0]
	if srv.ID != "A" || srv.Name != "A" {
		t.Errorf("expected id/name A, got %q/%q", srv.ID, srv.Name)
	}
	if srv.Type != model.ServerTypeLocal {
		t.Errorf("expected local server, got %s", srv.Type)
	}
	if srv.Cmd != "x" || !reflect.DeepEqual(srv.CmdArgs, []string{"y"}) {
		t.Errorf("expected cmd x [y], got %q %v", srv.Cmd, srv.CmdArgs)
	}
	if srv.URL != "" {
		t.Errorf("expected empty url, got %q", srv.URL)
	}
	if srv.Source != model.SourceClaudeDesktop {
		t.Errorf("expected claude_desktop source, got %q", srv.Source)
	}
}

func TestFromClaudeDesktop_SortedByName(t *testing.T) {
	testutil.Quiet(t)
	dir := t.TempDir()
	fp := testutil.WriteFile(t, dir, "cfg.json", `{
		"mcpServers": {
			"zeta": {"command": "z"},
			"alpha": {"command": "a"},
			"mid": {"command": "m"}
		}
	}`)

	servers := FromClaudeDesktop(fp)
	var names []string
	for _, srv := range servers {
		names = append(names, srv.Name)
	}
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestFromClaudeDesktop_SpacesInName(t *testing.T) {
	testutil.Quiet(t)
	dir := t.TempDir()
	fp := testutil.WriteFile(t, dir, "cfg.json",
		`{"mcpServers": {"My Tool Server": {"command": "npx"}}}`)

	servers := FromClaudeDesktop(fp)
	if len(servers) != 1 {
		t.Fatalf("expected 1 server, got %d", len(servers))
	}
	if servers[0].ID != "My_Tool_Server" {
		t.Errorf("expected underscored id, got %q", servers[0].ID)
	}
}

func TestFromClaudeDesktop_Degenerate(t *testing.T) {
	testutil.Quiet(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{not json`},
		{"no mcpServers key", `{"other": 1}`},
		{"mcpServers not an object", `{"mcpServers": ["a", "b"]}`},
		{"skips non-object entries", `{"mcpServers": {"A": "just a string"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := testutil.WriteFile(t, dir, tt.name+".json", tt.content)
			if servers := FromClaudeDesktop(fp); len(servers) != 0 {
				t.Errorf("expected no servers, got %d", len(servers))
			}
		})
	}
}

func TestFromClaudeDesktop_MissingFile(t *testing.T) {
	if servers := FromClaudeDesktop(filepath.Join(t.TempDir(), "nope.json")); len(servers) != 0 {
		t.Errorf("expected no servers for missing file, got %d", len(servers))
	}
}
