package reducer

import (
	"github.com/rmohr/ipextract/pkg/network"
)

func newNetworkList(literals ...string) []network.Network {
	r := []network.Network{}
	for _, literal := range literals {
		r = append(r, network.MustParse(literal))
	}
	return r
}

func keptStrings(r Result) []string {
	return network.Strings(r.Kept)
}

func eliminatedStrings(r Result) []string {
	return network.Strings(r.EliminatedNetworks())
}

func invalidLiterals(r Result) []string {
	literals := []string{}
	for _, i := range r.Invalid {
		literals = append(literals, i.Literal)
	}
	return literals
}

// rotated returns the literals rotated by n positions.
func rotated(literals []string, n int) []string {
	if len(literals) == 0 {
		return literals
	}
	n = n % len(literals)
	r := append([]string{}, literals[n:]...)
	return append(r, literals[:n]...)
}

func reversed(literals []string) []string {
	r := make([]string, 0, len(literals))
	for i := len(literals) - 1; i >= 0; i-- {
		r = append(r, literals[i])
	}
	return r
}
