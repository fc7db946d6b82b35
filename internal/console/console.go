package console

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ruleWidth is the total width of a section rule.
const ruleWidth = 60

// Pair is one row of a key/value table.
type Pair struct {
	Key   string
	Value string
}

// Options configures a Console.
type Options struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // text or json
}

// Console writes user-facing output to out and log records to errOut.
type Console struct {
	out    io.Writer
	logger *slog.Logger
	st     styles
}

type styles struct {
	section lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	key     lipgloss.Style
	command lipgloss.Style
	dim     lipgloss.Style
}

// New creates a Console. Colors are decided per writer, so a bytes.Buffer
// in tests receives plain text.
func New(out, errOut io.Writer, opts Options) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:    out,
		logger: NewLogger(opts.LogLevel, opts.LogFormat, errOut),
		st: styles{
			section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
			success: r.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#3FB950")).
				Padding(0, 1),
			failure: r.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#FF6B6B")).
				Padding(0, 1),
			key:     r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
			command: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E3B341")),
			dim:     r.NewStyle().Foreground(lipgloss.Color("#888888")),
		},
	}
}

// Discard returns a Console that drops all output. Useful in tests.
func Discard() *Console {
	return New(io.Discard, io.Discard, Options{LogLevel: "error"})
}

// Logger returns the structured logger owned by this Console.
func (c *Console) Logger() *slog.Logger {
	return c.logger
}

// Section prints a horizontal rule with a centered title.
func (c *Console) Section(title string) {
	label := " " + title + " "
	side := (ruleWidth - lipgloss.Width(label)) / 2
	if side < 2 {
		side = 2
	}
	line := strings.Repeat("─", side) + label + strings.Repeat("─", side)
	fmt.Fprintln(c.out, c.st.section.Render(line))
}

// Success prints a bordered success panel. Multiple lines are joined.
func (c *Console) Success(lines ...string) {
	fmt.Fprintln(c.out, c.st.success.Render(strings.Join(lines, "\n")))
}

// Failure prints a bordered failure panel.
func (c *Console) Failure(lines ...string) {
	fmt.Fprintln(c.out, c.st.failure.Render(strings.Join(lines, "\n")))
}

// Table prints aligned key/value rows.
func (c *Console) Table(rows ...Pair) {
	width := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Key); w > width {
			width = w
		}
	}
	for _, r := range rows {
		key := c.st.key.Width(width + 2).Render(r.Key)
		fmt.Fprintln(c.out, key+r.Value)
	}
}

// Command highlights a shell command about to run.
func (c *Console) Command(cmd string) {
	fmt.Fprintln(c.out, "$ "+c.st.command.Render(cmd))
}

// Line forwards one line of external command output. Its signature matches
// runner.LineFunc so it can be passed directly as the streaming callback.
func (c *Console) Line(line string) {
	fmt.Fprintln(c.out, line)
}

// Dim prints a de-emphasized line.
func (c *Console) Dim(line string) {
	fmt.Fprintln(c.out, c.st.dim.Render(line))
}

// Printf prints formatted plain output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
