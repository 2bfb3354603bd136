// Package render prints boards for a terminal, one styled cell per slot.
// Plain line output stays the consumer format; this is for people reading it.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gaidukev/Water-Puzzle-Solver/internal/board"
	"github.com/gaidukev/Water-Puzzle-Solver/internal/vial"
)

// Palette cycles for colors beyond its length.
var Palette = []lipgloss.Color{
	lipgloss.Color("#e53935"), // red
	lipgloss.Color("#2196F3"), // blue
	lipgloss.Color("#8BC34A"), // green
	lipgloss.Color("#FFC107"), // yellow
	lipgloss.Color("#8e24aa"), // purple
	lipgloss.Color("#ff8a65"), // orange
	lipgloss.Color("#4db6ac"), // teal
	lipgloss.Color("#f06292"), // pink
	lipgloss.Color("#795548"), // brown
	lipgloss.Color("#9e9e9e"), // grey
}

// Renderer styles board lines for the terminal behind w.
type Renderer struct {
	renderer *lipgloss.Renderer
	styles   map[vial.Color]lipgloss.Style
	empty    lipgloss.Style
}

// New creates a Renderer for output written to w. Colors are assigned palette
// entries in the order given.
func New(w io.Writer, colors []vial.Color) *Renderer {
	r := lipgloss.NewRenderer(w)
	styles := make(map[vial.Color]lipgloss.Style, len(colors))
	for i, c := range colors {
		styles[c] = r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#101F38")).
			Background(Palette[i%len(Palette)])
	}

	return &Renderer{
		renderer: r,
		styles:   styles,
		empty:    r.NewStyle().Faint(true),
	}
}

// Lipgloss exposes the underlying renderer, e.g. to force a color profile.
func (r *Renderer) Lipgloss() *lipgloss.Renderer {
	return r.renderer
}

// Line styles a single rendered vial line.
func (r *Renderer) Line(line string) string {
	var sb strings.Builder
	for _, ch := range line {
		if ch == vial.EmptySymbol {
			sb.WriteString(r.empty.Render(string(ch)))
			continue
		}
		if style, ok := r.styles[vial.Color(ch)]; ok {
			sb.WriteString(style.Render(string(ch)))
		} else {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// Board styles every vial of b, one line each.
func (r *Renderer) Board(b *board.Board) string {
	lines := b.Lines()
	for i, line := range lines {
		lines[i] = r.Line(line)
	}
	return strings.Join(lines, "\n")
}
