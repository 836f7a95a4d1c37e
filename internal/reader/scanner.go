package reader

import (
	"os"
	"regexp"
	"sort"

	"github.com/mcpdeck/mcpdeck/internal/model"
)

// urlRE is the last-resort pattern for spotting HTTP(S) endpoints inside a
// config file we failed to parse structurally. Deliberately permissive: a
// false positive is easy for the user to delete, a silently missed server
// is not.
var urlRE = regexp.MustCompile(`(?i)https?://[^\s'"` + "`" + `]+`)

// ScanFileForURLs reads a file as raw text and returns one remote server
// record per URL-looking match. The label (usually the source's display name)
// names every record; when empty, each record is named after its URL.
//
// Never fails: a missing or unreadable file yields an empty result.
func ScanFileForURLs(path, label string, source model.ServerSource) []model.Server {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var servers []model.Server
	for _, match := range urlRE.FindAllString(string(data), -1) {
		name := label
		if name == "" {
			name = match
		}
		servers = append(servers, model.NewRemote(name, match, source))
	}
	return servers
}

// urlsInValue walks a decoded JSON value and collects every string that
// contains a URL-shaped substring. Map keys are visited in sorted order so
// repeated runs over the same file produce identical sequences.
func urlsInValue(v any) []string {
	var urls []string
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			urls = append(urls, urlsInValue(val[k])...)
		}
	case []any:
		for _, item := range val {
			urls = append(urls, urlsInValue(item)...)
		}
	case string:
		if urlRE.MatchString(val) {
			urls = append(urls, val)
		}
	}
	return urls
}
