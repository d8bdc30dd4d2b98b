package rocket

import (
	"fmt"
	"strings"
)

// Reorient names one of the 24 whole-puzzle rotations: the null rotation,
// 6 face quarter rotations, 3 face double rotations, 6 edge-axis double
// rotations, and 8 corner-axis rotations.
type Reorient uint8

const (
	ReorientNone Reorient = iota

	ReorientR
	ReorientL
	ReorientU
	ReorientD
	ReorientF
	ReorientB

	ReorientR2
	ReorientU2
	ReorientF2

	ReorientUF
	ReorientUR
	ReorientFR
	ReorientDF
	ReorientUL
	ReorientBR

	ReorientUFR
	ReorientDBL
	ReorientUFL
	ReorientDBR
	ReorientDFR
	ReorientUBL
	ReorientUBR
	ReorientDFL

	reorientCount // 24
)

// ReorientCount is the size of the reorientation catalog.
const ReorientCount = int(reorientCount)

// Reorients lists the whole catalog in branching order.
func Reorients() []Reorient {
	all := make([]Reorient, ReorientCount)
	for i := range all {
		all[i] = Reorient(i)
	}
	return all
}

// orientationTable maps each reorientation to its Orientation bit pattern.
// The entries are derived by composing the face quarter-turn generator
// rotations and are validated exhaustively in tests (closure over the
// group and round-trip through the inverse).
var orientationTable = [ReorientCount]Orientation{
	ReorientNone: 0b0_000_00_01,

	ReorientR: 0b0_010_00_10,
	ReorientL: 0b0_001_00_10,
	ReorientU: 0b0_001_10_01,
	ReorientD: 0b0_100_10_01,
	ReorientF: 0b0_100_01_00,
	ReorientB: 0b0_010_01_00,

	ReorientR2: 0b0_011_00_01,
	ReorientU2: 0b0_101_00_01,
	ReorientF2: 0b0_110_00_01,

	ReorientUF: 0b0_100_00_10,
	ReorientUR: 0b0_001_01_00,
	ReorientFR: 0b0_010_10_01,
	ReorientDF: 0b0_111_00_10,
	ReorientUL: 0b0_111_01_00,
	ReorientBR: 0b0_111_10_01,

	ReorientUFR: 0b0_000_10_00,
	ReorientDBL: 0b0_000_01_10,
	ReorientUFL: 0b0_101_01_10,
	ReorientDBR: 0b0_110_10_00,
	ReorientDFR: 0b0_110_01_10,
	ReorientUBL: 0b0_011_10_00,
	ReorientUBR: 0b0_011_01_10,
	ReorientDFL: 0b0_101_10_00,
}

// names holds the canonical axis-rotation name of each reorientation.
// These are the tokens accepted for the cheap set and, prefixed with "O",
// the default display notation.
var names = [ReorientCount]string{
	ReorientNone: "",

	ReorientR: "x",
	ReorientL: "x'",
	ReorientU: "y",
	ReorientD: "y'",
	ReorientF: "z",
	ReorientB: "z'",

	ReorientR2: "x2",
	ReorientU2: "y2",
	ReorientF2: "z2",

	ReorientUF: "xy2",
	ReorientUR: "zx2",
	ReorientFR: "yz2",
	ReorientDF: "xz2",
	ReorientUL: "zy2",
	ReorientBR: "yx2",

	ReorientUFR: "xy",
	ReorientDBL: "y'x'",
	ReorientUFL: "zy",
	ReorientDBR: "xy'",
	ReorientDFR: "xz",
	ReorientUBL: "yz'",
	ReorientUBR: "yx",
	ReorientDFL: "zx'",
}

// stickerNames holds the alternate "sticker" display notation: the symbol
// names the sticker that ends up in a reference position, so the corner
// rotations display the name of the opposite corner.
var stickerNames = [ReorientCount]string{
	ReorientNone: "",

	ReorientR: "23I:L",
	ReorientL: "23I:R",
	ReorientU: "23I:D",
	ReorientD: "23I:U",
	ReorientF: "23I:B",
	ReorientB: "23I:F",

	ReorientR2: "23I:R2",
	ReorientU2: "23I:U2",
	ReorientF2: "23I:F2",

	ReorientUF: "23I:UF",
	ReorientUR: "23I:UR",
	ReorientFR: "23I:FR",
	ReorientDF: "23I:DF",
	ReorientUL: "23I:UL",
	ReorientBR: "23I:BR",

	ReorientUFR: "23I:DBL",
	ReorientDBL: "23I:UFR",
	ReorientUFL: "23I:DBR",
	ReorientDBR: "23I:UFL",
	ReorientDFR: "23I:UBL",
	ReorientUBL: "23I:DFR",
	ReorientUBR: "23I:DFL",
	ReorientDFL: "23I:UBR",
}

// Orientation returns the reorientation's effect on the axis frame.
func (r Reorient) Orientation() Orientation {
	if r >= reorientCount {
		panic(fmt.Sprintf("rocket: invalid reorientation %d", uint8(r)))
	}
	return orientationTable[r]
}

// Name returns the canonical axis-rotation name, e.g. "x", "y2", "xy'".
// The null reorientation has an empty name.
func (r Reorient) Name() string {
	return names[r]
}

// Symbol returns the display form of the reorientation in the selected
// notation: "Ox" style by default, "23I:L" style when sticker is true.
// The null reorientation renders as an empty string in both.
func (r Reorient) Symbol(sticker bool) string {
	if r == ReorientNone {
		return ""
	}
	if sticker {
		return stickerNames[r]
	}
	return "O" + names[r]
}

// IsNone reports whether this is the null reorientation.
func (r Reorient) IsNone() bool {
	return r == ReorientNone
}

// Cost returns the physical execution cost of the reorientation in
// quarter/half-turn equivalents: 1 for face rotations, 2 for face double
// and corner rotations, 3 for edge rotations. Membership in the cheap set
// overrides the cost to 1.
func (r Reorient) Cost(cheap CheapSet) int {
	if r == ReorientNone {
		return 0
	}
	if cheap.Contains(r) {
		return 1
	}
	switch {
	case r <= ReorientB:
		return 1
	case r <= ReorientF2:
		return 2
	case r <= ReorientBR:
		return 3
	default:
		return 2
	}
}

// ParseReorient resolves a canonical name (case-sensitively) to its
// catalog entry.
func ParseReorient(name string) (Reorient, error) {
	for r := ReorientR; r < reorientCount; r++ {
		if names[r] == name {
			return r, nil
		}
	}
	return ReorientNone, fmt.Errorf("%w: %q", ErrUnknownReorient, name)
}

// CheapSet is a bitmask of reorientations whose cost is overridden to 1,
// keyed by catalog ordinal.
type CheapSet uint32

// Add returns the set with r included.
func (s CheapSet) Add(r Reorient) CheapSet {
	return s | 1<<uint32(r)
}

// Contains reports whether r's cost is overridden.
func (s CheapSet) Contains(r Reorient) bool {
	return s>>uint32(r)&1 != 0
}

// ParseCheapSet parses a space-separated list of canonical reorientation
// names into a cheap set, e.g. "xy2 xz2 y2".
func ParseCheapSet(s string) (CheapSet, error) {
	var set CheapSet
	for _, name := range strings.Fields(s) {
		r, err := ParseReorient(name)
		if err != nil {
			return 0, err
		}
		set = set.Add(r)
	}
	return set, nil
}
