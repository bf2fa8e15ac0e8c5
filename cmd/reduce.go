package main

import (
	"os"

	"github.com/rmohr/ipextract/cmd/template"
	"github.com/rmohr/ipextract/pkg/reducer"
	"github.com/rmohr/ipextract/pkg/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type reduceOpts struct {
	in  []string
	out string
}

var reduceopts = reduceOpts{}

func NewReduceCmd() *cobra.Command {

	reduceCmd := &cobra.Command{
		Use:   "reduce [address...]",
		Short: "reduces a list of addresses and CIDR ranges",
		Long: `reduces the given addresses and ranges to a minimal list in which no network is a duplicate, a subnet,
a superset or an overlap of another one. Addresses can be passed as arguments or in files with one address per line.
`,
		RunE: func(cmd *cobra.Command, literals []string) error {
			result, err := reducer.Resolve(reducer.NewListLoader(literals, reduceopts.in))
			if err != nil {
				return err
			}
			if err := template.Render(os.Stdout, result); err != nil {
				return err
			}
			if reduceopts.out == "" {
				return nil
			}
			logrus.Infof("Writing %d networks to %s.", len(result.Kept), reduceopts.out)
			return report.WriteCSVFile(reduceopts.out, result.Kept)
		},
	}

	reduceCmd.Flags().StringArrayVarP(&reduceopts.in, "input", "i", nil, "file with one address or range per line. Can be specified multiple times")
	reduceCmd.Flags().StringVarP(&reduceopts.out, "output", "o", "", "where to write the reduced list as CSV")
	return reduceCmd
}
