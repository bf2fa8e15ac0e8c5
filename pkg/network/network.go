package network

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"net/netip"
	"slices"
	"strconv"
	"strings"
)

// Network is an IPv4 CIDR block. The address is always stored masked to the prefix length,
// so two Networks are equal if and only if they describe the same block.
type Network struct {
	addr uint32
	bits uint8
}

// ParseError is returned for literals which are not an IPv4 address with an optional prefix length.
type ParseError struct {
	Literal string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid network %q: %s", e.Literal, e.Reason)
}

func mask(bits int) uint32 {
	if bits == 0 {
		return 0
	}
	return ^uint32(0) << (32 - bits)
}

// New returns the network of the given prefix length which contains addr.
func New(addr uint32, bits int) (Network, error) {
	if bits < 0 || bits > 32 {
		return Network{}, fmt.Errorf("prefix length %d out of range [0,32]", bits)
	}
	return Network{addr: addr & mask(bits), bits: uint8(bits)}, nil
}

// Parse reads an IPv4 address with an optional prefix length. Bare addresses are /32 hosts
// and host bits beyond the prefix are cleared.
func Parse(literal string) (Network, error) {
	addrPart, bitsPart, hasBits := strings.Cut(literal, "/")

	ip, err := netip.ParseAddr(addrPart)
	if err != nil {
		return Network{}, &ParseError{Literal: literal, Reason: "not a dotted-quad address"}
	}
	if !ip.Is4() {
		return Network{}, &ParseError{Literal: literal, Reason: "not an IPv4 address"}
	}

	bits := 32
	if hasBits {
		if bitsPart == "" || len(bitsPart) > 2 || strings.Trim(bitsPart, "0123456789") != "" {
			return Network{}, &ParseError{Literal: literal, Reason: "malformed prefix length"}
		}
		bits, _ = strconv.Atoi(bitsPart)
		if bits > 32 {
			return Network{}, &ParseError{Literal: literal, Reason: fmt.Sprintf("prefix length %d out of range [0,32]", bits)}
		}
	}

	a4 := ip.As4()
	return New(binary.BigEndian.Uint32(a4[:]), bits)
}

// MustParse is like Parse but panics on invalid literals.
func MustParse(literal string) Network {
	n, err := Parse(literal)
	if err != nil {
		panic(err)
	}
	return n
}

// FromPrefix converts an IPv4 prefix, masking it if necessary.
func FromPrefix(p netip.Prefix) (Network, error) {
	if !p.IsValid() || !p.Addr().Is4() {
		return Network{}, fmt.Errorf("%v is not a valid IPv4 prefix", p)
	}
	a4 := p.Addr().As4()
	return New(binary.BigEndian.Uint32(a4[:]), p.Bits())
}

func (n Network) Addr() uint32 {
	return n.addr
}

func (n Network) Bits() int {
	return int(n.bits)
}

// Size is the number of addresses in the block, 2^(32-bits).
func (n Network) Size() uint64 {
	return uint64(1) << (32 - n.bits)
}

func (n Network) First() uint32 {
	return n.addr
}

func (n Network) Last() uint32 {
	return n.addr | ^mask(int(n.bits))
}

func (n Network) Contains(addr uint32) bool {
	return addr&mask(int(n.bits)) == n.addr
}

// SubnetOf reports whether n lies completely inside o. A network is a subnet of itself.
func (n Network) SubnetOf(o Network) bool {
	return o.bits <= n.bits && n.addr&mask(int(o.bits)) == o.addr
}

func (n Network) SupersetOf(o Network) bool {
	return o.SubnetOf(n)
}

// Overlaps reports whether the address ranges of n and o intersect.
func (n Network) Overlaps(o Network) bool {
	return n.First() <= o.Last() && o.First() <= n.Last()
}

// Prefix converts n for use with net/netip and go4.org/netipx.
func (n Network) Prefix() netip.Prefix {
	var a4 [4]byte
	binary.BigEndian.PutUint32(a4[:], n.addr)
	return netip.PrefixFrom(netip.AddrFrom4(a4), int(n.bits))
}

func (n Network) String() string {
	return n.Prefix().String()
}

// MarshalText writes the canonical CIDR form.
func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Compare orders networks for presentation: by address, then by prefix length.
func Compare(a, b Network) int {
	if c := cmp.Compare(a.addr, b.addr); c != 0 {
		return c
	}
	return cmp.Compare(a.bits, b.bits)
}

// CompareProcessing puts larger networks first and orders equally sized
// networks by address.
func CompareProcessing(a, b Network) int {
	if c := cmp.Compare(b.Size(), a.Size()); c != 0 {
		return c
	}
	return cmp.Compare(a.addr, b.addr)
}

func Sort(networks []Network) {
	slices.SortFunc(networks, Compare)
}

func SortForProcessing(networks []Network) {
	slices.SortFunc(networks, CompareProcessing)
}

func Strings(networks []Network) []string {
	r := make([]string, 0, len(networks))
	for _, n := range networks {
		r = append(r, n.String())
	}
	return r
}
