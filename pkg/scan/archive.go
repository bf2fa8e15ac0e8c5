package scan

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/mholt/archives"
	"github.com/sirupsen/logrus"
)

var archiveSuffixes = []string{
	".tar",
	".tar.gz",
	".tgz",
	".tar.bz2",
	".tar.xz",
	".tar.zst",
	".zip",
}

func IsArchiveName(name string) bool {
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// ExtractArchive scans every entry of the archive whose name is accepted by match. The returned
// map is keyed by "<archive>/<name in archive>".
func ExtractArchive(ctx context.Context, archivePath string, match func(name string) bool) (map[string]Set, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format, _, err := archives.Identify(ctx, archivePath, f)
	if err != nil {
		return nil, fmt.Errorf("failed to identify archive %s: %w", archivePath, err)
	}
	extractor, ok := format.(archives.Extractor)
	if !ok {
		return nil, fmt.Errorf("%s is compressed but not an archive", archivePath)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	found := map[string]Set{}
	err = extractor.Extract(ctx, f, func(ctx context.Context, info archives.FileInfo) error {
		if info.IsDir() || !match(info.NameInArchive) {
			return nil
		}
		entry, err := info.Open()
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", info.NameInArchive, err)
		}
		defer entry.Close()
		set, err := ExtractAddresses(entry)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", info.NameInArchive, err)
		}
		name := path.Join(archivePath, info.NameInArchive)
		logrus.Debugf("found %d addresses in %s", len(set), name)
		found[name] = set
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s: %w", archivePath, err)
	}
	return found, nil
}
