package template

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rmohr/ipextract/pkg/reducer"
)

func Render(writer io.Writer, result reducer.Result) error {
	tabWriter := tabwriter.NewWriter(writer, 0, 8, 1, '\t', 0)
	if _, err := fmt.Fprintln(tabWriter, "Network\tAddresses\tReason\tAbsorbed By"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	if _, err := fmt.Fprintln(tabWriter, "Keeping:\t\t\t"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	for _, n := range result.Kept {
		if _, err := fmt.Fprintf(tabWriter, " %v\t%s\t\t\n", n, toReadableQuantity(n.Size())); err != nil {
			return fmt.Errorf("failed to write entry: %v", err)
		}
	}
	if _, err := fmt.Fprintln(tabWriter, "Removing:\t\t\t"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	for _, e := range result.Eliminated {
		if _, err := fmt.Fprintf(tabWriter, " %v\t%s\t%s\t%v\n", e.Network, toReadableQuantity(e.Network.Size()), e.Reason, e.AbsorbedBy); err != nil {
			return fmt.Errorf("failed to write entry: %v", err)
		}
	}
	if len(result.Invalid) > 0 {
		if _, err := fmt.Fprintln(tabWriter, "Skipping:\t\t\t"); err != nil {
			return fmt.Errorf("failed to write header: %v", err)
		}
		for _, i := range result.Invalid {
			if _, err := fmt.Fprintf(tabWriter, " %s\t\tinvalid\t\n", i.Literal); err != nil {
				return fmt.Errorf("failed to write entry: %v", err)
			}
		}
	}
	if _, err := fmt.Fprintln(tabWriter, "\t\t\t\nSummary:\t\t\t"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	if _, err := fmt.Fprintf(tabWriter, "Keeping %d Networks \t\t\t\n", len(result.Kept)); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	if _, err := fmt.Fprintf(tabWriter, "Removing %d Networks \t\t\t\n", len(result.Eliminated)); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	if len(result.Invalid) > 0 {
		if _, err := fmt.Fprintf(tabWriter, "Skipping %d Literals \t\t\t\n", len(result.Invalid)); err != nil {
			return fmt.Errorf("failed to write header: %v", err)
		}
	}
	if err := tabWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %v", err)
	}
	return nil
}

func toReadableQuantity(addresses uint64) string {
	if addresses >= 1<<30 {
		return fmt.Sprintf("%.2f G", float64(addresses)/(1<<30))
	} else if addresses >= 1<<20 {
		return fmt.Sprintf("%.2f M", float64(addresses)/(1<<20))
	} else if addresses >= 1<<10 {
		return fmt.Sprintf("%.2f K", float64(addresses)/(1<<10))
	} else {
		return fmt.Sprintf("%d", addresses)
	}
}
