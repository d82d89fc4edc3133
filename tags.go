package main

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Entries under <output_dir>/tags that are not tags
var invalidTags = map[string]bool{
	"":           true,
	".":          true,
	"..":         true,
	"index.md":   true,
	"index.html": true,
}

// DiscoverTags lists tags already published under the site's output directory.
// It returns nil when the output directory is unknown or cannot be listed.
func DiscoverTags(fs afero.Fs, site SiteConfig) []string {
	if site.OutputDir == "" {
		return nil
	}

	outPath := site.OutputDir
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(site.Dir, outPath)
	}

	entries, err := afero.ReadDir(fs, filepath.Join(outPath, "tags"))
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return filterTags(names)
}

func filterTags(names []string) []string {
	var tags []string
	for _, name := range names {
		if !invalidTags[name] {
			tags = append(tags, name)
		}
	}
	return tags
}

// mergeTags appends the entries of extra not already in tags, keeping order
func mergeTags(tags, extra []string) []string {
	seen := make(map[string]bool, len(tags))
	merged := make([]string, 0, len(tags)+len(extra))
	for _, tag := range append(append([]string{}, tags...), extra...) {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
	}
	return merged
}
