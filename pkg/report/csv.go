package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rmohr/ipextract/pkg/network"
)

const Header = "IP Address/Range"

// WriteCSV writes a single column table with a header row. The networks are written sorted by
// address, regardless of their order in kept.
func WriteCSV(w io.Writer, kept []network.Network) error {
	sorted := slices.Clone(kept)
	network.Sort(sorted)

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{Header}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, n := range sorted {
		if err := writer.Write([]string{n.String()}); err != nil {
			return fmt.Errorf("failed to write %s: %w", n, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func WriteCSVFile(path string, kept []network.Network) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	if err := WriteCSV(f, kept); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// ReadCSV reads back a table written by WriteCSV.
func ReadCSV(r io.Reader) ([]network.Network, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || len(records[0]) != 1 || records[0][0] != Header {
		return nil, fmt.Errorf("missing %q header", Header)
	}
	networks := make([]network.Network, 0, len(records)-1)
	for _, record := range records[1:] {
		n, err := network.Parse(record[0])
		if err != nil {
			return nil, err
		}
		networks = append(networks, n)
	}
	return networks, nil
}
