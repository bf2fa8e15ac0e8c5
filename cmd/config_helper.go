package main

import (
	"fmt"
	"os"

	"github.com/rmohr/ipextract/pkg/api/ipextract"
	"github.com/rmohr/ipextract/pkg/config"
	"github.com/sirupsen/logrus"
)

// loadConfig reads the explicitly requested config file, or the one in the user config
// directory if it exists. Without either, the defaults are used.
func loadConfig(path string) (*ipextract.Config, error) {
	if path != "" {
		return config.LoadConfigFile(path)
	}
	path = config.DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logrus.Debugf("no config file at %s, using defaults", path)
		return config.DefaultConfig(), nil
	} else if err != nil {
		return nil, err
	}
	logrus.Debugf("using config file %s", path)
	return config.LoadConfigFile(path)
}

// toConfig applies the flags which were set on the command line on top of the loaded config.
func toConfig(base *ipextract.Config, opts extractOpts, changed func(flag string) bool) (*ipextract.Config, error) {
	cfg := *base
	if changed("dir") {
		cfg.Directories = opts.dirs
	}
	if changed("prefix") {
		cfg.FilePrefixes = opts.prefixes
	}
	if changed("suffix") {
		cfg.FileSuffix = opts.suffix
	}
	if changed("output") {
		cfg.Output = opts.output
	}
	if changed("archives") {
		cfg.Archives = opts.archives
	}
	config.Normalize(&cfg)

	if len(cfg.Directories) == 0 {
		return nil, fmt.Errorf("no directories to scan, use --dir or a config file")
	}
	if cfg.Output == "" && !opts.dryRun {
		return nil, fmt.Errorf("no output file configured")
	}
	return &cfg, nil
}
