package dataset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover maps dataset names to YAML files beneath root. The name is the
// file's base name without extension; on duplicates the lexically first
// path wins.
func Discover(root string) (map[string]string, error) {
	entries := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isYAML(d.Name()) {
			entries = append(entries, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover datasets: %w", err)
	}
	sort.Strings(entries)
	found := make(map[string]string, len(entries))
	for _, path := range entries {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, dup := found[name]; dup {
			continue
		}
		found[name] = path
	}
	return found, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
