package reducer

import (
	"cmp"
	"slices"

	"github.com/rmohr/ipextract/pkg/network"
	"github.com/sirupsen/logrus"
)

type Reason string

const (
	ReasonDuplicate Reason = "duplicate"
	ReasonSubnet    Reason = "subnet"
	ReasonSuperset  Reason = "superset"
	// Two valid CIDR blocks either nest or are disjoint, so this is never produced for parsed input.
	ReasonOverlap Reason = "overlap"
)

type Elimination struct {
	Network    network.Network
	AbsorbedBy network.Network
	Reason     Reason
}

type InvalidLiteral struct {
	Literal string
	Err     error
}

type Result struct {
	// Kept is sorted by address, then prefix length.
	Kept []network.Network
	// Eliminated is in processing order, largest networks first.
	Eliminated []Elimination
	Invalid    []InvalidLiteral
}

func (r Result) EliminatedNetworks() []network.Network {
	networks := make([]network.Network, 0, len(r.Eliminated))
	for _, e := range r.Eliminated {
		networks = append(networks, e.Network)
	}
	return networks
}

type NetworkReducer struct {
	literals []string
	loader   AddressLoader
}

func (r *NetworkReducer) Load() error {
	literals, err := r.loader.Load()
	if err != nil {
		return err
	}
	r.literals = literals
	return nil
}

func (r *NetworkReducer) LiteralCount() int {
	return len(r.literals)
}

func (r *NetworkReducer) Reduce() Result {
	return Reduce(r.literals)
}

func NewNetworkReducer(loader AddressLoader) *NetworkReducer {
	return &NetworkReducer{loader: loader}
}

// Reduce parses the literals and reduces the valid ones. Literals which can't be parsed are
// reported in Result.Invalid and otherwise ignored.
func Reduce(literals []string) Result {
	networks := make([]network.Network, 0, len(literals))
	var invalid []InvalidLiteral
	for _, literal := range literals {
		n, err := network.Parse(literal)
		if err != nil {
			logrus.Warnf("skipping %v", err)
			invalid = append(invalid, InvalidLiteral{Literal: literal, Err: err})
			continue
		}
		networks = append(networks, n)
	}
	slices.SortFunc(invalid, func(a, b InvalidLiteral) int {
		return cmp.Compare(a.Literal, b.Literal)
	})

	result := ReduceNetworks(networks)
	result.Invalid = invalid
	return result
}

// ReduceNetworks does the reduction on already parsed networks. The input slice is not modified.
func ReduceNetworks(networks []network.Network) Result {
	candidates := slices.Clone(networks)
	network.SortForProcessing(candidates)

	result := Result{Kept: []network.Network{}, Eliminated: []Elimination{}}
	for _, candidate := range candidates {
		if absorbedBy, reason, found := findConflict(candidate, result.Kept); found {
			logrus.Debugf("eliminating %s: %s of %s", candidate, reason, absorbedBy)
			result.Eliminated = append(result.Eliminated, Elimination{
				Network:    candidate,
				AbsorbedBy: absorbedBy,
				Reason:     reason,
			})
			continue
		}
		result.Kept = append(result.Kept, candidate)
	}

	network.Sort(result.Kept)
	return result
}

// findConflict checks the candidate against every kept network, not only the last one.
func findConflict(candidate network.Network, kept []network.Network) (network.Network, Reason, bool) {
	for _, existing := range kept {
		switch {
		case candidate == existing:
			return existing, ReasonDuplicate, true
		case candidate.SubnetOf(existing):
			return existing, ReasonSubnet, true
		case candidate.SupersetOf(existing):
			return existing, ReasonSuperset, true
		case candidate.Overlaps(existing):
			return existing, ReasonOverlap, true
		}
	}
	return network.Network{}, "", false
}

func Resolve(loader AddressLoader) (Result, error) {
	networkReducer := NewNetworkReducer(loader)
	logrus.Info("Loading addresses.")
	if err := networkReducer.Load(); err != nil {
		return Result{}, err
	}
	logrus.Infof("loaded %d addresses", networkReducer.LiteralCount())
	logrus.Info("Removing duplicates, subsets and overlapping networks.")
	result := networkReducer.Reduce()
	if err := Verify(result.Kept); err != nil {
		logrus.Fatalf("reduction produced an inconsistent result: %v", err)
	}
	return result, nil
}
