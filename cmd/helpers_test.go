package cmd

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mcpdeck/mcpdeck/internal/paths"
	"github.com/mcpdeck/mcpdeck/internal/testutil"
)

// testCatalog points the data directory at a temp dir and opens a fresh
// catalog in it.
func testCatalog(t *testing.T) *catalog {
	t.Helper()
	testutil.Quiet(t)
	t.Setenv(paths.EnvHome, t.TempDir())

	cat, err := openCatalog()
	if err != nil {
		t.Fatalf("openCatalog: %v", err)
	}
	return cat
}

// writeTestManifest writes a single-source manifest plus the config file it
// points at, and returns the manifest path.
func writeTestManifest(t *testing.T, sourceID, config string) string {
	t.Helper()
	dir := t.TempDir()
	configFP := testutil.WriteFile(t, dir, "app-config.json", config)
	return testutil.WriteFile(t, dir, "sources.json",
		`{"sources": [{"id": "`+sourceID+`", "path": `+strconv.Quote(configFP)+`, "name": "Test App"}]}`)
}

func fileExists(t *testing.T, fp string) bool {
	t.Helper()
	_, err := os.Stat(fp)
	return err == nil
}

func dataFile(t *testing.T, name string) string {
	t.Helper()
	dir, err := paths.DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	return filepath.Join(dir, name)
}
