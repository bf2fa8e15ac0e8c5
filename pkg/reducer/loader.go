package reducer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type AddressLoader interface {
	Load() ([]string, error)
}

// ListLoader provides literals given directly, plus the ones listed in files.
// Files contain one literal per line. Empty lines and lines starting with '#' are skipped.
type ListLoader struct {
	literals  []string
	listFiles []string
}

func (l ListLoader) Load() ([]string, error) {
	literals := []string{}
	seen := map[string]struct{}{}
	add := func(literal string) {
		if _, exists := seen[literal]; exists {
			return
		}
		seen[literal] = struct{}{}
		literals = append(literals, literal)
	}

	for _, literal := range l.literals {
		add(strings.TrimSpace(literal))
	}

	for _, listFile := range l.listFiles {
		f, err := os.Open(listFile)
		if err != nil {
			return literals, err
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			add(line)
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return literals, fmt.Errorf("failed to read %s: %w", listFile, err)
		}
	}

	return literals, nil
}

func NewListLoader(literals []string, listFiles []string) ListLoader {
	return ListLoader{literals: literals, listFiles: listFiles}
}
