package scan

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
)

// AddressPattern matches dotted quads with an optional prefix length. It is purely lexical,
// the values are validated when they are parsed into networks.
var AddressPattern = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}(?:/\d{1,2})?\b`)

type Set map[string]struct{}

func (s Set) Add(literals ...string) {
	for _, literal := range literals {
		s[literal] = struct{}{}
	}
}

func (s Set) Update(other Set) {
	for literal := range other {
		s[literal] = struct{}{}
	}
}

func (s Set) Sorted() []string {
	literals := make([]string, 0, len(s))
	for literal := range s {
		literals = append(literals, literal)
	}
	slices.Sort(literals)
	return literals
}

func ExtractAddresses(r io.Reader) (Set, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	set := Set{}
	for _, match := range AddressPattern.FindAll(content, -1) {
		set.Add(string(match))
	}
	return set, nil
}

func ExtractFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	set, err := ExtractAddresses(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return set, nil
}
