package main

import (
	"github.com/rmohr/ipextract/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type initOpts struct {
	out string
}

var initopts = initOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init [directory...]",
		Short: "Create a basic config.yaml file",
		Long:  `Create a config file with the default file prefixes, suffix and output for the given directories`,
		RunE: func(cmd *cobra.Command, directories []string) error {
			out := initopts.out
			if out == "" {
				out = config.DefaultPath()
			}
			if err := config.Init(out, directories); err != nil {
				return err
			}
			logrus.Infof("Wrote %s.", out)
			return nil
		},
	}

	initCmd.Flags().StringVarP(&initopts.out, "output", "o", "config.yaml", "where to write the config file, empty for the user config directory")
	return initCmd
}
