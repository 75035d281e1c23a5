package bytesize

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// twoTo64 is the smallest float64 that does not fit in a uint64.
const twoTo64 = 1 << 64

// Parse reads a byte count from s.
//
// A plain unsigned integer is taken as a number of bytes. Anything else is
// a number made of digits and a decimal point, optionally followed by
// spaces, and a unit suffix from the unit table ("K", "kb", "Mi", "GiB",
// ...). The single-letter suffixes are decimal: "8P" is 8*10^15 bytes.
// The product of number and unit is truncated toward zero, so "1.5Ki" is
// 1536 and "0.0001K" is 0.
func Parse(s string) (ByteSize, error) {
	text := strings.TrimSpace(s)
	if n, err := strconv.ParseUint(text, 10, 64); err == nil {
		return ByteSize(n), nil
	}

	end := strings.IndexFunc(text, func(r rune) bool {
		return !isMantissa(r)
	})
	if end < 0 {
		end = len(text)
	}
	v, err := strconv.ParseFloat(text[:end], 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &ParseError{Input: s, Err: ErrInvalidNumber, Cause: err}
	}

	suffix := strings.TrimLeftFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || isMantissa(r)
	})
	u, err := ResolveUnit(suffix)
	if err != nil {
		return 0, &ParseError{Input: s, Suffix: suffix, Err: ErrUnknownUnit}
	}

	product := v * float64(u.Multiplier())
	if product >= twoTo64 {
		return 0, &ParseError{Input: s, Suffix: suffix, Err: ErrOverflow}
	}
	return ByteSize(product), nil
}

// MustParse is like Parse but panics if s cannot be parsed. It is meant for
// initializing package variables from constants.
func MustParse(s string) ByteSize {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

func isMantissa(r rune) bool {
	return ('0' <= r && r <= '9') || r == '.'
}
