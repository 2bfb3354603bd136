package board

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gaidukev/Water-Puzzle-Solver/internal/vial"
)

// Board is an ordered collection of vials.
type Board struct {
	vials []*vial.Vial
}

// New creates a Board holding the given vials in order.
// The Board takes ownership of the vials.
func New(vials ...*vial.Vial) *Board {
	return &Board{vials: vials}
}

// NewFromLines creates a Board from the line format produced by Lines.
// Each line holds exactly vial.Capacity runes, vial.EmptySymbol for empty slots.
func NewFromLines(lines []string, permissive bool) (*Board, error) {
	b := &Board{vials: make([]*vial.Vial, 0, len(lines))}

	for idx, line := range lines {
		if n := utf8.RuneCountInString(line); n != vial.Capacity {
			return nil, fmt.Errorf("%w: line %d has %d runes, want %d", ErrLineWidth, idx, n, vial.Capacity)
		}

		contents := make([]vial.Color, 0, vial.Capacity)
		sawEmpty := false
		for _, r := range line {
			if r == vial.EmptySymbol {
				sawEmpty = true
				continue
			}
			if sawEmpty {
				return nil, fmt.Errorf("%w: line %d %q", vial.ErrGap, idx, line)
			}
			contents = append(contents, vial.Color(r))
		}

		v, err := vial.New(permissive, contents...)
		if err != nil {
			return nil, fmt.Errorf("invalid vial at line %d: %w", idx, err)
		}
		b.vials = append(b.vials, v)
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := &Board{vials: make([]*vial.Vial, len(b.vials))}
	for i, v := range b.vials {
		clone.vials[i] = v.Clone()
	}
	return clone
}

// Len returns the number of vials.
func (b *Board) Len() int {
	return len(b.vials)
}

// Vial returns the vial at index i, or nil if i is out of range.
func (b *Board) Vial(i int) *vial.Vial {
	if i < 0 || i >= len(b.vials) {
		return nil
	}
	return b.vials[i]
}

// EmptyCount returns the number of completely empty vials.
func (b *Board) EmptyCount() int {
	count := 0
	for _, v := range b.vials {
		if v.IsEmpty() {
			count++
		}
	}
	return count
}

// Counts returns the number of units of each color across all vials.
func (b *Board) Counts() map[vial.Color]int {
	counts := make(map[vial.Color]int)
	for _, v := range b.vials {
		for _, c := range v.Contents() {
			counts[c]++
		}
	}
	return counts
}

// Lines returns one rendered line per vial, in index order.
func (b *Board) Lines() []string {
	lines := make([]string, len(b.vials))
	for i, v := range b.vials {
		lines[i] = v.String()
	}
	return lines
}

// String returns the board in line format, one vial per line.
func (b *Board) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Format returns a human-readable board representation with vial indexes.
func (b *Board) Format() string {
	var sb strings.Builder
	width := len(fmt.Sprint(len(b.vials)))
	line := "+" + strings.Repeat("-", width+2) + "+" + strings.Repeat("-", 2*vial.Capacity+1) + "+\n"

	sb.WriteString(line)
	for i, v := range b.vials {
		fmt.Fprintf(&sb, "| %*d | ", width, i)
		for _, r := range v.String() {
			sb.WriteRune(r)
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(line)

	return sb.String()
}
