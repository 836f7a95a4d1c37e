package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mcpdeck/mcpdeck/internal/model"
)

// SyncServer writes a {"name","url"} entry for the server into the source's
// own config file, under its top-level "servers" array. A missing config
// file is created; an entry with the same URL already present makes this a
// no-op. The rest of the config is preserved untouched.
func SyncServer(src model.Source, srv model.Server) error {
	config, err := loadSourceConfig(src.Path)
	if err != nil {
		return err
	}

	entries, _ := config["servers"].([]any)
	for _, item := range entries {
		if entry, ok := item.(map[string]any); ok {
			if url, _ := entry["url"].(string); url == srv.URL {
				return nil
			}
		}
	}

	config["servers"] = append(entries, map[string]any{
		"name": srv.Name,
		"url":  srv.URL,
	})
	return saveSourceConfig(src.Path, config)
}

// UnsyncServer removes every entry matching the server's URL from the
// source's config file. A config without a matching entry (or without a
// servers array at all) is left alone.
func UnsyncServer(src model.Source, srv model.Server) error {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read source config: %w", err)
	}

	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse source config %s: %w", src.Path, err)
	}

	entries, ok := config["servers"].([]any)
	if !ok {
		return nil
	}

	kept := make([]any, 0, len(entries))
	for _, item := range entries {
		if entry, ok := item.(map[string]any); ok {
			if url, _ := entry["url"].(string); url == srv.URL {
				continue
			}
		}
		kept = append(kept, item)
	}
	if len(kept) == len(entries) {
		return nil
	}

	config["servers"] = kept
	return saveSourceConfig(src.Path, config)
}

func loadSourceConfig(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{"servers": []any{}}, nil
		}
		return nil, fmt.Errorf("failed to read source config: %w", err)
	}

	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse source config %s: %w", path, err)
	}
	return config, nil
}

func saveSourceConfig(path string, config map[string]any) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal source config: %w", err)
	}
	return writeAtomic(path, data)
}
