package scan

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

type FileResult struct {
	Path      string
	Addresses Set
}

// Scanner finds configuration files below a set of directories and extracts address literals from them.
type Scanner struct {
	Dirs     []string
	Prefixes []string
	Suffix   string
	// Archives enables looking into tar and zip archives found below Dirs.
	Archives bool
}

func (s *Scanner) matchName(name string) bool {
	return MatchName(name, s.Prefixes, s.Suffix)
}

func (s *Scanner) Scan(ctx context.Context) ([]FileResult, error) {
	files, err := FindConfigFiles(s.Dirs, s.Prefixes, s.Suffix)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Found %d configuration files.", len(files))

	results := make([]FileResult, 0, len(files))
	for _, file := range files {
		set, err := ExtractFile(file)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Extracted %d IP addresses from %s", len(set), file)
		results = append(results, FileResult{Path: file, Addresses: set})
	}

	if !s.Archives {
		return results, nil
	}

	archiveFiles, err := FindFiles(s.Dirs, IsArchiveName)
	if err != nil {
		return nil, err
	}
	for _, archiveFile := range archiveFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, err := ExtractArchive(ctx, archiveFile, s.matchName)
		if err != nil {
			logrus.Warnf("skipping archive: %v", err)
			continue
		}
		for _, name := range sortedKeys(found) {
			logrus.Infof("Extracted %d IP addresses from %s", len(found[name]), name)
			results = append(results, FileResult{Path: name, Addresses: found[name]})
		}
	}
	return results, nil
}

// Load returns the union of all extracted literals, sorted.
func (s *Scanner) Load() ([]string, error) {
	results, err := s.Scan(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to scan %v: %w", s.Dirs, err)
	}
	all := Set{}
	for _, result := range results {
		all.Update(result.Addresses)
	}
	logrus.Infof("Total IP addresses extracted: %d", len(all))
	return all.Sorted(), nil
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
