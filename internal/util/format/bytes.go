package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"bytesize/bytesize"
)

// Output selects how command results are written.
type Output string

const (
	OutputText  Output = "text"
	OutputTable Output = "table"
	OutputJSON  Output = "json"
	OutputYAML  Output = "yaml"
)

// ParseOutput validates an --output value.
func ParseOutput(s string) (Output, error) {
	switch o := Output(strings.ToLower(strings.TrimSpace(s))); o {
	case OutputText, OutputTable, OutputJSON, OutputYAML:
		return o, nil
	default:
		return "", fmt.Errorf("invalid --output: %q (valid: text|table|json|yaml)", s)
	}
}

// Row is one input converted into every rendering.
type Row struct {
	Input   string `json:"input" yaml:"input"`
	Bytes   uint64 `json:"bytes" yaml:"bytes"`
	Decimal string `json:"decimal" yaml:"decimal"`
	Binary  string `json:"binary" yaml:"binary"`
	Sort    string `json:"sort" yaml:"sort"`
}

// NewRow converts b, which was read from input.
func NewRow(input string, b bytesize.ByteSize) Row {
	return Row{
		Input:   input,
		Bytes:   b.Uint64(),
		Decimal: b.Humanize(bytesize.FormatDecimal),
		Binary:  b.Humanize(bytesize.FormatBinary),
		Sort:    b.Humanize(bytesize.FormatSort),
	}
}

// Style controls padding of text output. A zero Width disables padding.
type Style struct {
	Width int
	Align bytesize.Align
	Fill  rune
}

// Pad places s in a field of st.Width cells.
func Pad(s string, st Style) string {
	if st.Width <= 0 {
		return s
	}
	fill := st.Fill
	if fill == 0 {
		fill = ' '
	}
	return lipgloss.PlaceHorizontal(st.Width, position(st.Align), s, lipgloss.WithWhitespaceChars(string(fill)))
}

func position(a bytesize.Align) lipgloss.Position {
	switch a {
	case bytesize.AlignLeft:
		return lipgloss.Left
	case bytesize.AlignCenter:
		return lipgloss.Center
	default:
		return lipgloss.Right
	}
}

// WriteLines writes each line padded according to st.
func WriteLines(w io.Writer, lines []string, st Style) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, Pad(l, st)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders rows as a table.
func WriteTable(w io.Writer, rows []Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Input", "Bytes", "Decimal", "Binary", "Sort"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Input, r.Bytes, r.Decimal, r.Binary, r.Sort})
	}
	t.Render()
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// WriteYAML writes v as a YAML document.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
