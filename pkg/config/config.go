package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/rmohr/ipextract/pkg/api/ipextract"
	"golang.org/x/exp/maps"
	"sigs.k8s.io/yaml"
)

const (
	DefaultFileSuffix = ".yaml"
	DefaultOutput     = "unique_ip_addresses.csv"
)

var DefaultFilePrefixes = []string{"deployment-jsdl-", "ingress-jsdl-"}

// DefaultConfig matches the file layout of the deployment and ingress manifests.
func DefaultConfig() *ipextract.Config {
	return &ipextract.Config{
		Directories:  []string{},
		FilePrefixes: slices.Clone(DefaultFilePrefixes),
		FileSuffix:   DefaultFileSuffix,
		Output:       DefaultOutput,
	}
}

// DefaultPath is the config file below the XDG config home. The file does not need to exist.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "ipextract", "config.yaml")
}

// Init writes a default config file listing the given directories. Existing files are never overwritten.
func Init(path string, directories []string) error {
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("config file %s already exists", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	cfg := DefaultConfig()
	cfg.Directories = directories
	Normalize(cfg)
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory for %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0660)
}

// LoadConfigFile reads a YAML config file. Unset fields get their defaults.
func LoadConfigFile(path string) (*ipextract.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	Normalize(cfg)
	return cfg, nil
}

// Normalize removes duplicate directories and prefixes and sorts them.
func Normalize(cfg *ipextract.Config) {
	cfg.Directories = unique(cfg.Directories)
	cfg.FilePrefixes = unique(cfg.FilePrefixes)
}

func unique(values []string) []string {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}
