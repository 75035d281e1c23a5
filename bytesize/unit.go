package bytesize

import (
	"fmt"
	"strings"
)

// Base selects the step between two adjacent unit magnitudes.
type Base int

const (
	// Decimal is the SI base: each magnitude is 1000 times the previous one.
	Decimal Base = iota
	// Binary is the IEC base: each magnitude is 1024 times the previous one.
	Binary
)

// Step returns the multiplier between two adjacent ranks.
func (b Base) Step() uint64 {
	if b == Binary {
		return 1024
	}
	return 1000
}

func (b Base) String() string {
	switch b {
	case Decimal:
		return "decimal"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Base(%d)", int(b))
	}
}

// Decimal (SI) units.
const (
	B  ByteSize = 1
	KB ByteSize = 1000 * B
	MB ByteSize = 1000 * KB
	GB ByteSize = 1000 * MB
	TB ByteSize = 1000 * GB
	PB ByteSize = 1000 * TB
)

// Binary (IEC) units.
const (
	KiB ByteSize = 1024 * B
	MiB ByteSize = 1024 * KiB
	GiB ByteSize = 1024 * MiB
	TiB ByteSize = 1024 * GiB
	PiB ByteSize = 1024 * TiB
)

// magnitudes holds the prefix letters indexed by rank-1. Both bases share
// the same letters; only the trailing "B" or "iB" tells them apart.
const magnitudes = "KMGTPE"

// Unit is a magnitude class: a rank (0 = byte, 1 = kilo/kibi, ...) at a base.
type Unit struct {
	Base Base
	Rank int
}

// Units of the closed unit table.
var (
	Byte     = Unit{Base: Decimal, Rank: 0}
	Kilobyte = Unit{Base: Decimal, Rank: 1}
	Megabyte = Unit{Base: Decimal, Rank: 2}
	Gigabyte = Unit{Base: Decimal, Rank: 3}
	Terabyte = Unit{Base: Decimal, Rank: 4}
	Petabyte = Unit{Base: Decimal, Rank: 5}

	Kibibyte = Unit{Base: Binary, Rank: 1}
	Mebibyte = Unit{Base: Binary, Rank: 2}
	Gibibyte = Unit{Base: Binary, Rank: 3}
	Tebibyte = Unit{Base: Binary, Rank: 4}
	Pebibyte = Unit{Base: Binary, Rank: 5}
)

// units maps every recognized lower-case suffix to its unit. A bare
// magnitude letter resolves to the decimal unit; only the "i" infix
// selects the binary one.
var units = map[string]Unit{
	"b": Byte,

	"k": Kilobyte, "kb": Kilobyte,
	"m": Megabyte, "mb": Megabyte,
	"g": Gigabyte, "gb": Gigabyte,
	"t": Terabyte, "tb": Terabyte,
	"p": Petabyte, "pb": Petabyte,

	"ki": Kibibyte, "kib": Kibibyte,
	"mi": Mebibyte, "mib": Mebibyte,
	"gi": Gibibyte, "gib": Gibibyte,
	"ti": Tebibyte, "tib": Tebibyte,
	"pi": Pebibyte, "pib": Pebibyte,
}

// ResolveUnit looks up a unit suffix, ignoring case. Only exact matches
// against the unit table are accepted.
func ResolveUnit(suffix string) (Unit, error) {
	u, ok := units[strings.ToLower(suffix)]
	if !ok {
		return Unit{}, fmt.Errorf("%w %q", ErrUnknownUnit, suffix)
	}
	return u, nil
}

// Multiplier returns the number of bytes in one u.
func (u Unit) Multiplier() ByteSize {
	return ByteSize(pow(u.Base.Step(), u.Rank))
}

// Suffixes returns the suffixes that resolve to u, shortest first.
func (u Unit) Suffixes() []string {
	if u.Rank == 0 {
		return []string{"b"}
	}
	letter := strings.ToLower(magnitudes[u.Rank-1 : u.Rank])
	if u.Base == Binary {
		return []string{letter + "i", letter + "ib"}
	}
	return []string{letter, letter + "b"}
}

// String returns the canonical symbol of u, e.g. "B", "KB" or "KiB".
func (u Unit) String() string {
	if u.Rank == 0 {
		return "B"
	}
	if u.Rank < 0 || u.Rank > len(magnitudes) {
		return fmt.Sprintf("Unit(%s, %d)", u.Base, u.Rank)
	}
	letter := magnitudes[u.Rank-1 : u.Rank]
	if u.Base == Binary {
		return letter + "iB"
	}
	return letter + "B"
}

func pow(base uint64, exp int) uint64 {
	n := uint64(1)
	for i := 0; i < exp; i++ {
		n *= base
	}
	return n
}
