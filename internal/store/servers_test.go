package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mcpdeck/mcpdeck/internal/model"
	"github.com/mcpdeck/mcpdeck/internal/testutil"
)

func TestOpenServerStore_MissingFile(t *testing.T) {
	s := OpenServerStore(filepath.Join(t.TempDir(), "servers.json"))
	if got := len(s.All()); got != 0 {
		t.Errorf("expected empty store, got %d servers", got)
	}
}

func TestOpenServerStore_CorruptFile(t *testing.T) {
	testutil.Quiet(t)
	dir := t.TempDir()
	fp := testutil.WriteFile(t, dir, "servers.json", `{broken`)

	s := OpenServerStore(fp)
	if got := len(s.All()); got != 0 {
		t.Errorf("corrupt catalog should open empty, got %d servers", got)
	}
}

func TestServerStore_CreateAndRoundTrip(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "servers.json")
	s := OpenServerStore(fp)

	created, err := s.Create(model.Server{
		Name: "My Server",
		URL:  "https://mcp.example/sse",
		Type: model.ServerTypeRemote,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "my_server" {
		t.Errorf("id = %q, want my_server", created.ID)
	}

	reopened := OpenServerStore(fp)
	got, ok := reopened.Get("my_server")
	if !ok {
		t.Fatal("server not found after reopen")
	}
	if got.URL != "https://mcp.example/sse" {
		t.Errorf("url = %q after round trip", got.URL)
	}
}

func TestServerStore_CreateRejectsRemoteWithoutURL(t *testing.T) {
	s := OpenServerStore(filepath.Join(t.TempDir(), "servers.json"))
	_, err := s.Create(model.Server{Name: "bad", Type: model.ServerTypeRemote})
	if !errors.Is(err, model.ErrRemoteWithoutURL) {
		t.Errorf("expected ErrRemoteWithoutURL, got %v", err)
	}
}

func TestServerStore_IDCollisionSuffix(t *testing.T) {
	s := OpenServerStore(filepath.Join(t.TempDir(), "servers.json"))

	first, err := s.Create(model.Server{Name: "Tool", Type: model.ServerTypeLocal, Cmd: "a"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := s.Create(model.Server{Name: "tool", Type: model.ServerTypeLocal, Cmd: "b"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	third, err := s.Create(model.Server{Name: "Tool", Type: model.ServerTypeLocal, Cmd: "c"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if first.ID != "tool" || second.ID != "tool_1" || third.ID != "tool_2" {
		t.Errorf("ids = %q, %q, %q; want tool, tool_1, tool_2", first.ID, second.ID, third.ID)
	}
}

func TestServerStore_EmptyNameGetsRandomID(t *testing.T) {
	s := OpenServerStore(filepath.Join(t.TempDir(), "servers.json"))
	created, err := s.Create(model.Server{Name: "  ", Type: model.ServerTypeLocal, Cmd: "x"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created.ID) != 8 {
		t.Errorf("expected an 8-char random id, got %q", created.ID)
	}
}

func TestServerStore_PartialUpdate(t *testing.T) {
	s := OpenServerStore(filepath.Join(t.TempDir(), "servers.json"))
	created, err := s.Create(model.Server{
		Name:     "srv",
		URL:      "https://a.example",
		Type:     model.ServerTypeRemote,
		Subtitle: "original",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newURL := "https://b.example"
	ok, err := s.Update(created.ID, model.ServerUpdate{URL: &newURL})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}

	got, _ := s.Get(created.ID)
	if got.URL != "https://b.example" {
		t.Errorf("url = %q, want https://b.example", got.URL)
	}
	if got.Subtitle != "original" {
		t.Errorf("untouched field changed: %q", got.Subtitle)
	}

	if ok, err := s.Update("nope", model.ServerUpdate{URL: &newURL}); ok || err != nil {
		t.Errorf("unknown id should be ok=false err=nil, got ok=%v err=%v", ok, err)
	}
}

func TestServerStore_DeleteClearsSelection(t *testing.T) {
	s := OpenServerStore(filepath.Join(t.TempDir(), "servers.json"))
	created, err := s.Create(model.Server{Name: "srv", Type: model.ServerTypeLocal, Cmd: "x"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ok, err := s.Select(created.ID); !ok || err != nil {
		t.Fatalf("Select: ok=%v err=%v", ok, err)
	}

	if ok, err := s.Delete(created.ID); !ok || err != nil {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if _, ok := s.Selected(); ok {
		t.Error("deleting the selected server must clear the selection")
	}

	if ok, err := s.Delete(created.ID); ok || err != nil {
		t.Errorf("second delete should be ok=false err=nil, got ok=%v err=%v", ok, err)
	}
}

func TestServerStore_SelectionPersists(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "servers.json")
	s := OpenServerStore(fp)
	created, err := s.Create(model.Server{Name: "srv", Type: model.ServerTypeLocal, Cmd: "x"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Select(created.ID); err != nil {
		t.Fatalf("Select: %v", err)
	}

	reopened := OpenServerStore(fp)
	sel, ok := reopened.Selected()
	if !ok || sel.ID != created.ID {
		t.Errorf("selection lost across reopen: ok=%v id=%q", ok, sel.ID)
	}
}

func TestServerStore_FindByURL(t *testing.T) {
	s := OpenServerStore(filepath.Join(t.TempDir(), "servers.json"))
	if _, err := s.Create(model.Server{Name: "a", URL: "https://a.example", Type: model.ServerTypeRemote}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if srv, ok := s.FindByURL("https://a.example"); !ok || srv.Name != "a" {
		t.Errorf("FindByURL miss: ok=%v srv=%+v", ok, srv)
	}
	if _, ok := s.FindByURL("https://missing.example"); ok {
		t.Error("expected miss for unknown url")
	}
	if _, ok := s.FindByURL(""); ok {
		t.Error("empty url must never match")
	}
}

func TestServerStore_FindLocal(t *testing.T) {
	s := OpenServerStore(filepath.Join(t.TempDir(), "servers.json"))
	if _, err := s.Create(model.Server{Name: "github", Type: model.ServerTypeLocal, Cmd: "npx"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(model.Server{Name: "github", URL: "https://gh.example", Type: model.ServerTypeRemote}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	srv, ok := s.FindLocal("github", "npx")
	if !ok || srv.ID != "github" {
		t.Errorf("FindLocal miss: ok=%v srv=%+v", ok, srv)
	}
	// Remotes never match, even with the same name.
	if _, ok := s.FindLocal("github", ""); ok {
		t.Error("remote record must not match FindLocal")
	}
	if _, ok := s.FindLocal("github", "docker"); ok {
		t.Error("different command must not match")
	}
}

func TestServerStore_AllSortedByName(t *testing.T) {
	s := OpenServerStore(filepath.Join(t.TempDir(), "servers.json"))
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := s.Create(model.Server{Name: name, Type: model.ServerTypeLocal, Cmd: "x"}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}
	all := s.All()
	if all[0].Name != "alpha" || all[1].Name != "mid" || all[2].Name != "zeta" {
		t.Errorf("unexpected order: %s, %s, %s", all[0].Name, all[1].Name, all[2].Name)
	}
}
