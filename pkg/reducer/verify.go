package reducer

import (
	"fmt"

	"github.com/rmohr/ipextract/pkg/network"
	"go4.org/netipx"
)

// Verify checks that no two networks are equal, nested or overlapping.
func Verify(kept []network.Network) error {
	for i := range kept {
		for j := i + 1; j < len(kept); j++ {
			if kept[i].Overlaps(kept[j]) {
				return fmt.Errorf("%s and %s overlap", kept[i], kept[j])
			}
		}
	}
	return nil
}

// Covers reports whether the kept networks span exactly the same addresses as all networks.
func Covers(kept, all []network.Network) (bool, error) {
	keptSet, err := toIPSet(kept)
	if err != nil {
		return false, err
	}
	allSet, err := toIPSet(all)
	if err != nil {
		return false, err
	}
	return keptSet.Equal(allSet), nil
}

func toIPSet(networks []network.Network) (*netipx.IPSet, error) {
	var builder netipx.IPSetBuilder
	for _, n := range networks {
		builder.AddPrefix(n.Prefix())
	}
	set, err := builder.IPSet()
	if err != nil {
		return nil, fmt.Errorf("failed to build address set: %w", err)
	}
	return set, nil
}
