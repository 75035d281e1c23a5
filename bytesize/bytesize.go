// Package bytesize provides ByteSize, an unsigned count of bytes that can be
// rendered as a human readable string in decimal (SI) or binary (IEC) units
// and parsed back from expressions such as "1.5 GiB", "500" or "8P".
//
// A ByteSize is a plain uint64, so the usual operators work on it and wrap
// like any uint64. Add, Sub and Mul are the checked variants.
package bytesize

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ByteSize is an exact number of bytes.
type ByteSize uint64

// Max is the largest representable byte count.
const Max ByteSize = math.MaxUint64

// FromUnit returns n units of u. It wraps on overflow like any uint64
// product; use Mul when overflow must be detected.
func FromUnit(u Unit, n uint64) ByteSize {
	return ByteSize(n) * u.Multiplier()
}

func Bytes(n uint64) ByteSize     { return ByteSize(n) }
func Kilobytes(n uint64) ByteSize { return FromUnit(Kilobyte, n) }
func Megabytes(n uint64) ByteSize { return FromUnit(Megabyte, n) }
func Gigabytes(n uint64) ByteSize { return FromUnit(Gigabyte, n) }
func Terabytes(n uint64) ByteSize { return FromUnit(Terabyte, n) }
func Petabytes(n uint64) ByteSize { return FromUnit(Petabyte, n) }
func Kibibytes(n uint64) ByteSize { return FromUnit(Kibibyte, n) }
func Mebibytes(n uint64) ByteSize { return FromUnit(Mebibyte, n) }
func Gibibytes(n uint64) ByteSize { return FromUnit(Gibibyte, n) }
func Tebibytes(n uint64) ByteSize { return FromUnit(Tebibyte, n) }
func Pebibytes(n uint64) ByteSize { return FromUnit(Pebibyte, n) }

// Uint64 returns b as a plain integer.
func (b ByteSize) Uint64() uint64 {
	return uint64(b)
}

// In returns b expressed in u, e.g. 1536 bytes in KiB is 1.5.
func (b ByteSize) In(u Unit) float64 {
	return float64(b) / float64(u.Multiplier())
}

// Add returns b+o, or ErrOverflow if the sum does not fit in 64 bits.
func (b ByteSize) Add(o ByteSize) (ByteSize, error) {
	sum, carry := bits.Add64(uint64(b), uint64(o), 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return ByteSize(sum), nil
}

// Sub returns b-o, or ErrUnderflow if o is larger than b.
func (b ByteSize) Sub(o ByteSize) (ByteSize, error) {
	diff, borrow := bits.Sub64(uint64(b), uint64(o), 0)
	if borrow != 0 {
		return 0, ErrUnderflow
	}
	return ByteSize(diff), nil
}

// Mul returns b*n, or ErrOverflow if the product does not fit in 64 bits.
func (b ByteSize) Mul(n uint64) (ByteSize, error) {
	hi, lo := bits.Mul64(uint64(b), n)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return ByteSize(lo), nil
}

// AddN is Add for an unsigned integer of any width.
func AddN[T constraints.Unsigned](b ByteSize, n T) (ByteSize, error) {
	return b.Add(ByteSize(n))
}

// SubN is Sub for an unsigned integer of any width.
func SubN[T constraints.Unsigned](b ByteSize, n T) (ByteSize, error) {
	return b.Sub(ByteSize(n))
}

// MulN is Mul for an unsigned integer of any width. Multiplication
// commutes, so it also covers the n*b case.
func MulN[T constraints.Unsigned](b ByteSize, n T) (ByteSize, error) {
	return b.Mul(uint64(n))
}

// Sum adds sizes, stopping at the first overflow.
func Sum(sizes ...ByteSize) (ByteSize, error) {
	var total ByteSize
	for _, s := range sizes {
		var err error
		if total, err = total.Add(s); err != nil {
			return 0, err
		}
	}
	return total, nil
}
