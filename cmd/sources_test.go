package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mcpdeck/mcpdeck/internal/model"
)

func TestListSources_Empty(t *testing.T) {
	cat := testCatalog(t)

	var out bytes.Buffer
	if err := listSources(&out, cat); err != nil {
		t.Fatalf("listSources: %v", err)
	}
	if !strings.Contains(out.String(), "No sources registered") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestAddSource(t *testing.T) {
	cat := testCatalog(t)

	var out bytes.Buffer
	if err := addSource(&out, cat, "Cursor", "/home/u/.cursor/mcp.json"); err != nil {
		t.Fatalf("addSource: %v", err)
	}
	if !strings.Contains(out.String(), "Added Cursor (cursor)") {
		t.Errorf("unexpected output: %q", out.String())
	}

	// Same path again is rejected.
	if err := addSource(&out, cat, "Cursor Again", "/home/u/.cursor/mcp.json"); err == nil {
		t.Error("expected duplicate-path rejection")
	}
}

func TestRemoveSource_DropsLinks(t *testing.T) {
	cat := testCatalog(t)
	src, err := cat.sources.Create(model.Source{Name: "Cursor", Path: "/p"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := cat.links.Add("some-server", src.ID); err != nil {
		t.Fatalf("Add link: %v", err)
	}

	var out bytes.Buffer
	if err := removeSource(&out, cat, src.ID); err != nil {
		t.Fatalf("removeSource: %v", err)
	}
	if _, ok := cat.sources.Get(src.ID); ok {
		t.Error("source still in catalog")
	}
	if len(cat.links.ServersFor(src.ID)) != 0 {
		t.Error("links not dropped with the source")
	}

	if err := removeSource(&out, cat, src.ID); err == nil {
		t.Error("expected an error for an unknown id")
	}
}
