package bytesize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		bytes   ByteSize
		binary  string
		decimal string
		sort    string
	}{
		{name: "zero", bytes: 0, binary: "0 B", decimal: "0 B", sort: "0B"},
		{name: "below both units", bytes: 215, binary: "215 B", decimal: "215 B", sort: "215B"},
		{name: "one kibibyte", bytes: KiB, binary: "1.0 KiB", decimal: "1.0 KB", sort: "1.0K"},
		{name: "between kilo and kibi", bytes: 1000, binary: "1000 B", decimal: "1.0 KB", sort: "1000B"},
		{name: "one and a half kibibytes", bytes: 1536, binary: "1.5 KiB", decimal: "1.5 KB", sort: "1.5K"},
		{name: "301 kilobytes", bytes: 301 * KB, binary: "293.9 KiB", decimal: "301.0 KB", sort: "293.9K"},
		{name: "one mebibyte", bytes: MiB, binary: "1.0 MiB", sort: "1.0M"},
		{name: "1907 mebibytes", bytes: 1907 * MiB, binary: "1.9 GiB", sort: "1.9G"},
		{name: "1908 mebibytes", bytes: 1908 * MiB, decimal: "2.0 GB"},
		{name: "419 megabytes", bytes: 419 * MB, binary: "399.6 MiB", decimal: "419.0 MB", sort: "399.6M"},
		{name: "518 gigabytes", bytes: 518 * GB, binary: "482.4 GiB", decimal: "518.0 GB", sort: "482.4G"},
		{name: "815 terabytes", bytes: 815 * TB, binary: "741.2 TiB", decimal: "815.0 TB", sort: "741.2T"},
		{name: "609 petabytes", bytes: 609 * PB, binary: "540.9 PiB", decimal: "609.0 PB", sort: "540.9P"},
		{name: "max", bytes: Max, binary: "16.0 EiB", decimal: "18.4 EB", sort: "16.0E"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.binary != "" {
				assert.Equal(t, tt.binary, tt.bytes.Humanize(FormatBinary))
			}
			if tt.decimal != "" {
				assert.Equal(t, tt.decimal, tt.bytes.Humanize(FormatDecimal))
			}
			if tt.sort != "" {
				assert.Equal(t, tt.sort, Humanize(uint64(tt.bytes), FormatSort))
			}
		})
	}
}

func TestRenderExactBelowUnit(t *testing.T) {
	for n := uint64(0); n < 1024; n++ {
		want := fmt.Sprintf("%d B", n)
		if n < 1000 {
			assert.Equal(t, want, FormatDecimal.Render(n))
		}
		assert.Equal(t, want, FormatBinary.Render(n))
	}
}

func TestRankIsMonotonic(t *testing.T) {
	for _, f := range []Format{FormatDecimal, FormatBinary} {
		prev, prevRank := uint64(0), 0
		for n := uint64(1); n < uint64(Max)/3; n = n*3/2 + 1 {
			rank := f.Rank(n)
			if rank < prevRank {
				t.Fatalf("%s: Rank(%d) = %d, but Rank(%d) = %d", f, n, rank, prev, prevRank)
			}
			prev, prevRank = n, rank
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "215 B", Bytes(215).String())
	assert.Equal(t, "1.0 KiB", Kibibytes(1).String())
	assert.Equal(t, "301.0 KiB", Kibibytes(301).String())
	assert.Equal(t, "419.0 MiB", Mebibytes(419).String())
	assert.Equal(t, "518.0 GiB", Gibibytes(518).String())
	assert.Equal(t, "815.0 TiB", Tebibytes(815).String())
	assert.Equal(t, "609.0 PiB", Pebibytes(609).String())
}

func TestFormatVerbs(t *testing.T) {
	b := ByteSize(357)
	tests := []struct {
		format string
		want   string
	}{
		{format: "%v", want: "357 B"},
		{format: "%s", want: "357 B"},
		{format: "|%10v|", want: "|     357 B|"},
		{format: "|%-10v|", want: "|357 B     |"},
		{format: "|%3v|", want: "|357 B|"},
		{format: "%d", want: "357"},
		{format: "%6d", want: "   357"},
		{format: "%x", want: "165"},
		{format: "%q", want: `"357 B"`},
		{format: "%#v", want: "bytesize.ByteSize(357)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprintf(tt.format, b))
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		fill  rune
		want  string
	}{
		{name: "left", align: AlignLeft, fill: ' ', want: "357 B     "},
		{name: "right", align: AlignRight, fill: ' ', want: "     357 B"},
		{name: "center", align: AlignCenter, fill: ' ', want: "  357 B   "},
		{name: "left dashes", align: AlignLeft, fill: '-', want: "357 B-----"},
		{name: "right dashes", align: AlignRight, fill: '-', want: "-----357 B"},
		{name: "center dashes", align: AlignCenter, fill: '-', want: "--357 B---"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pad(ByteSize(357).String(), 10, tt.align, tt.fill))
		})
	}

	assert.Equal(t, "1.0 KiB", Pad("1.0 KiB", 4, AlignCenter, '*'))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "binary", want: FormatBinary},
		{in: "IEC", want: FormatBinary},
		{in: "decimal", want: FormatDecimal},
		{in: " si ", want: FormatDecimal},
		{in: "sort", want: FormatSort},
		{in: "octal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustFormat(t, got.String()))
		})
	}
}

func mustFormat(t *testing.T, s string) Format {
	t.Helper()
	f, err := ParseFormat(s)
	if err != nil {
		t.Fatalf("ParseFormat(%q): %v", s, err)
	}
	return f
}

func TestParseAlign(t *testing.T) {
	for in, want := range map[string]Align{"left": AlignLeft, ">": AlignRight, "Center": AlignCenter} {
		got, err := ParseAlign(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAlign("justify")
	assert.Error(t, err)
}
