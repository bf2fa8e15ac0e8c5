package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// MatchName reports whether the base name starts with one of the prefixes and ends with suffix.
// An empty prefix list matches every name.
func MatchName(name string, prefixes []string, suffix string) bool {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, suffix) {
		return false
	}
	if len(prefixes) == 0 {
		return true
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(base, prefix) {
			return true
		}
	}
	return false
}

// FindFiles walks every directory and returns the sorted paths of all regular files accepted by match.
func FindFiles(dirs []string, match func(path string) bool) ([]string, error) {
	files := []string{}
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if match(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

func FindConfigFiles(dirs []string, prefixes []string, suffix string) ([]string, error) {
	return FindFiles(dirs, func(path string) bool {
		return MatchName(path, prefixes, suffix)
	})
}
