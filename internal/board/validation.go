package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gaidukev/Water-Puzzle-Solver/internal/vial"
)

var (
	ErrLineWidth    = errors.New("line width does not match vial capacity")
	ErrConservation = errors.New("color counts do not match")
)

// Validate reports whether every vial is gap-free and the board holds exactly
// the expected number of units of each color.
func (b *Board) Validate(expected map[vial.Color]int) error {
	for i, v := range b.vials {
		if err := v.Valid(); err != nil {
			return fmt.Errorf("vial %d: %w", i, err)
		}
	}

	got := b.Counts()
	colors := make([]vial.Color, 0, len(got)+len(expected))
	for c := range got {
		colors = append(colors, c)
	}
	for c := range expected {
		if _, ok := got[c]; !ok {
			colors = append(colors, c)
		}
	}
	slices.Sort(colors)

	for _, c := range colors {
		if got[c] != expected[c] {
			return fmt.Errorf("%w: color %q has %d units, want %d", ErrConservation, rune(c), got[c], expected[c])
		}
	}
	return nil
}
