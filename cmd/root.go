package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	logLevel string
}

var rootopts = rootOpts{}

var rootCmd = &cobra.Command{
	Use:   "ipextract",
	Short: "ipextract collects IP addresses and ranges from configuration files",
	Long:  `The tool extracts IPv4 addresses and CIDR ranges from deployment and ingress manifests and reduces them to a minimal list without duplicates, nested or overlapping networks`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(rootopts.logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&rootopts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.AddCommand(NewExtractCmd())
	rootCmd.AddCommand(NewReduceCmd())
	rootCmd.AddCommand(NewInitCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
