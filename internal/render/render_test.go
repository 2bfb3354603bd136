package render

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaidukev/Water-Puzzle-Solver/internal/board"
	"github.com/gaidukev/Water-Puzzle-Solver/internal/vial"
)

func TestLinePlainWithoutTerminal(t *testing.T) {
	r := New(&bytes.Buffer{}, []vial.Color{'A', 'B'})
	r.Lipgloss().SetColorProfile(termenv.Ascii)

	assert.Equal(t, "AB__", r.Line("AB__"))
	assert.Equal(t, "ZZ__", r.Line("ZZ__"))
}

func TestLineStyledForTrueColor(t *testing.T) {
	r := New(&bytes.Buffer{}, []vial.Color{'A', 'B'})
	r.Lipgloss().SetColorProfile(termenv.TrueColor)

	out := r.Line("AB__")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
}

func TestBoard(t *testing.T) {
	r := New(&bytes.Buffer{}, []vial.Color{'A', 'B'})
	r.Lipgloss().SetColorProfile(termenv.Ascii)

	b, err := board.NewFromLines([]string{"AABB", "____"}, false)
	require.NoError(t, err)
	assert.Equal(t, "AABB\n____", r.Board(b))
}

func TestPaletteCycles(t *testing.T) {
	colors := make([]vial.Color, 0, len(Palette)+2)
	for i := 0; i < len(Palette)+2; i++ {
		colors = append(colors, vial.Color('a'+i))
	}
	r := New(&bytes.Buffer{}, colors)
	assert.Len(t, r.styles, len(colors))
}
