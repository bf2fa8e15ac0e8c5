package main

import (
	"github.com/rmohr/ipextract/pkg/reducer"
	"github.com/rmohr/ipextract/pkg/report"
	"github.com/rmohr/ipextract/pkg/scan"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type extractOpts struct {
	configFile string
	dirs       []string
	prefixes   []string
	suffix     string
	output     string
	archives   bool
	dryRun     bool
}

var extractopts = extractOpts{}

func NewExtractCmd() *cobra.Command {

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract, reduce and store the IP addresses found in configuration files",
		Long: `Walks the given directories, extracts all IPv4 addresses and CIDR ranges from the matching files,
removes duplicates, subnets and overlapping networks and writes the remaining networks to a CSV file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := loadConfig(extractopts.configFile)
			if err != nil {
				return err
			}
			cfg, err := toConfig(base, extractopts, cmd.Flags().Changed)
			if err != nil {
				return err
			}

			logrus.Info("Finding configuration files.")
			scanner := &scan.Scanner{
				Dirs:     cfg.Directories,
				Prefixes: cfg.FilePrefixes,
				Suffix:   cfg.FileSuffix,
				Archives: cfg.Archives,
			}
			result, err := reducer.Resolve(scanner)
			if err != nil {
				return err
			}

			logrus.Infof("Unique IP addresses after removal: %d", len(result.Kept))
			for _, e := range result.Eliminated {
				logrus.Infof("Removed %s (%s of %s)", e.Network, e.Reason, e.AbsorbedBy)
			}

			if extractopts.dryRun {
				for _, n := range result.Kept {
					logrus.Info(n.String())
				}
				return nil
			}
			logrus.Infof("Saving to %s.", cfg.Output)
			if err := report.WriteCSVFile(cfg.Output, result.Kept); err != nil {
				return err
			}
			logrus.Info("Done.")
			return nil
		},
	}

	extractCmd.Flags().StringVarP(&extractopts.configFile, "config", "c", "", "config file, defaults to config.yaml in the user config directory if present")
	extractCmd.Flags().StringArrayVarP(&extractopts.dirs, "dir", "d", nil, "directory to scan. Can be specified multiple times")
	extractCmd.Flags().StringArrayVarP(&extractopts.prefixes, "prefix", "p", nil, "file name prefix to match. Can be specified multiple times")
	extractCmd.Flags().StringVarP(&extractopts.suffix, "suffix", "s", ".yaml", "file name suffix to match")
	extractCmd.Flags().StringVarP(&extractopts.output, "output", "o", "unique_ip_addresses.csv", "where to write the CSV file")
	extractCmd.Flags().BoolVar(&extractopts.archives, "archives", false, "also scan matching files inside tar and zip archives")
	extractCmd.Flags().BoolVar(&extractopts.dryRun, "dry-run", false, "log the result instead of writing the CSV file")
	return extractCmd
}
