package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a dataset from a YAML file.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var ds Dataset
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(ds.Examples) == 0 {
		return Dataset{}, fmt.Errorf("dataset %s: no examples", path)
	}
	return ds, nil
}

// Resolve finds a dataset by preset name, file path, or a name discovered
// under dir, in that order.
func Resolve(ref, dir string) (Dataset, error) {
	if ref == "" {
		return Dataset{}, errors.New("dataset: empty reference")
	}
	if ds, ok := Preset(ref); ok {
		return ds, nil
	}
	if _, err := os.Stat(ref); err == nil {
		return Load(ref)
	}
	if dir != "" {
		found, err := Discover(dir)
		if err != nil {
			return Dataset{}, err
		}
		if path, ok := found[ref]; ok {
			return Load(path)
		}
	}
	return Dataset{}, fmt.Errorf("dataset %q not found (presets: %s)", ref, strings.Join(PresetNames(), ", "))
}
