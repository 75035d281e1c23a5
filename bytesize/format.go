package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format is one of the fixed rendering strategies.
type Format int

const (
	// FormatBinary renders with IEC units: "1.5 KiB".
	FormatBinary Format = iota
	// FormatDecimal renders with SI units: "1.5 KB".
	FormatDecimal
	// FormatSort renders binary magnitudes compactly for column sorting:
	// "1.5K", "215B".
	FormatSort
)

var formatNames = map[Format]string{
	FormatBinary:  "binary",
	FormatDecimal: "decimal",
	FormatSort:    "sort",
}

// ParseFormat maps "binary"/"iec", "decimal"/"si" or "sort" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "iec":
		return FormatBinary, nil
	case "decimal", "si":
		return FormatDecimal, nil
	case "sort":
		return FormatSort, nil
	default:
		return 0, fmt.Errorf("invalid format %q (valid: decimal|binary|sort)", s)
	}
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Base returns the unit base the format renders in.
func (f Format) Base() Base {
	if f == FormatDecimal {
		return Decimal
	}
	return Binary
}

func (f Format) layout() (sep, suffix string) {
	switch f {
	case FormatDecimal:
		return " ", "B"
	case FormatSort:
		return "", ""
	default:
		return " ", "iB"
	}
}

// Rank returns the magnitude Render selects for bytes: 0 below one unit,
// otherwise floor(ln(bytes)/ln(step)) but at least 1.
//
// The rank comes from the logarithm, not from repeated integer division.
// The two disagree near magnitude boundaries and only the logarithm gives
// "1.9 GiB" for 1907 MiB.
func (f Format) Rank(bytes uint64) int {
	step := f.Base().Step()
	if bytes < step {
		return 0
	}
	rank := int(math.Log(float64(bytes)) / math.Log(float64(step)))
	return min(max(rank, 1), len(magnitudes))
}

// Render returns bytes as a human readable string with one decimal digit.
func (f Format) Render(bytes uint64) string {
	sep, suffix := f.layout()
	rank := f.Rank(bytes)
	if rank == 0 {
		b := strconv.AppendUint(make([]byte, 0, 24), bytes, 10)
		return string(b) + sep + "B"
	}
	scaled := float64(bytes) / float64(pow(f.Base().Step(), rank))
	b := strconv.AppendFloat(make([]byte, 0, 24), scaled, 'f', 1, 64)
	return string(b) + sep + magnitudes[rank-1:rank] + suffix
}

// Humanize renders bytes using f.
func Humanize(bytes uint64, f Format) string {
	return f.Render(bytes)
}

// Humanize renders b using f.
func (b ByteSize) Humanize(f Format) string {
	return f.Render(uint64(b))
}

// String renders b with binary units.
func (b ByteSize) String() string {
	return FormatBinary.Render(uint64(b))
}

// Format implements fmt.Formatter. %v and %s print the binary rendering and
// honor width and the '-' flag; %d, %x, %X and %o print the raw integer.
func (b ByteSize) Format(st fmt.State, verb rune) {
	switch verb {
	case 'd', 'x', 'X', 'o', 'b':
		fmt.Fprintf(st, fmt.FormatString(st, verb), uint64(b))
	case 'v', 's':
		s := b.String()
		if st.Flag('#') {
			s = "bytesize.ByteSize(" + strconv.FormatUint(uint64(b), 10) + ")"
		}
		w, ok := st.Width()
		if !ok {
			_, _ = st.Write([]byte(s))
			return
		}
		align := AlignRight
		if st.Flag('-') {
			align = AlignLeft
		}
		_, _ = st.Write([]byte(Pad(s, w, align, ' ')))
	case 'q':
		_, _ = st.Write([]byte(strconv.Quote(b.String())))
	default:
		fmt.Fprintf(st, "%%!%c(bytesize.ByteSize=%d)", verb, uint64(b))
	}
}

// Align positions a string inside a padded field.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "Align(" + strconv.Itoa(int(a)) + ")"
	}
}

// ParseAlign maps "left", "right" or "center" to an Align.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "<":
		return AlignLeft, nil
	case "right", ">":
		return AlignRight, nil
	case "center", "centre", "^":
		return AlignCenter, nil
	default:
		return 0, fmt.Errorf("invalid alignment %q (valid: left|right|center)", s)
	}
}

// Pad fills s with fill up to width runes. Centered text gets the odd
// extra cell on the right. s is returned unchanged when it is already as
// wide as width.
func Pad(s string, width int, a Align, fill rune) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	f := string(fill)
	switch a {
	case AlignLeft:
		return s + strings.Repeat(f, n)
	case AlignCenter:
		left := n / 2
		return strings.Repeat(f, left) + s + strings.Repeat(f, n-left)
	default:
		return strings.Repeat(f, n) + s
	}
}
