package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bytesize/bytesize"
)

// Model is an interactive converter: the size typed into the input is
// re-parsed on every keystroke and shown in every format.
type Model struct {
	input  textinput.Model
	styles Styles

	size bytesize.ByteSize
	err  error
}

// NewModel returns a converter whose input starts with initial.
func NewModel(initial string) Model {
	in := textinput.New()
	in.Placeholder = "1.5 GiB"
	in.Prompt = "size> "
	in.CharLimit = 64
	in.SetValue(initial)
	in.Focus()

	m := Model{input: in, styles: defaultStyles()}
	m.reparse()
	return m
}

// Size returns the last successfully parsed size and the error, if any,
// from parsing the current input.
func (m Model) Size() (bytesize.ByteSize, error) {
	return m.size, m.err
}

func (m *Model) reparse() {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		m.size, m.err = 0, nil
		return
	}
	b, err := bytesize.Parse(v)
	if err != nil {
		m.err = err
		return
	}
	m.size, m.err = b, nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reparse()
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("bytesize"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("type a size such as 1907MiB or 518 GB • esc: quit"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewResult())
	return m.styles.Box.Render(b.String()) + "\n"
}

func (m Model) viewResult() string {
	if m.err != nil {
		return m.styles.Error.Render(errorText(m.err))
	}
	if strings.TrimSpace(m.input.Value()) == "" {
		return m.styles.Faint.Render("waiting for input")
	}
	lines := []string{
		m.line("bytes", m.styles.Raw.Render(strconv.FormatUint(m.size.Uint64(), 10))),
		m.line("decimal", m.styles.Value.Render(m.size.Humanize(bytesize.FormatDecimal))),
		m.line("binary", m.styles.Value.Render(m.size.Humanize(bytesize.FormatBinary))),
		m.line("sort", m.styles.Value.Render(m.size.Humanize(bytesize.FormatSort))),
	}
	return strings.Join(lines, "\n")
}

func (m Model) line(label, value string) string {
	return m.styles.Label.Render(label) + value
}

func errorText(err error) string {
	switch {
	case errors.Is(err, bytesize.ErrUnknownUnit):
		return "✗ unknown unit: " + err.Error()
	case errors.Is(err, bytesize.ErrOverflow):
		return "✗ too large: " + err.Error()
	default:
		return "✗ " + err.Error()
	}
}
