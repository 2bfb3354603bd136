package vial

import (
	"fmt"
	"strings"
)

const (
	// Capacity is the number of slots in every vial.
	Capacity = 4

	// EmptySymbol is printed for an empty slot. It is never a valid Color.
	EmptySymbol = '_'
)

// Color identifies a unit of liquid. The rune doubles as its display symbol.
type Color rune

// Slot is either empty or holds exactly one unit of a Color.
type Slot struct {
	color  Color
	filled bool
}

// EmptySlot returns a slot holding nothing.
func EmptySlot() Slot {
	return Slot{}
}

// Filled returns a slot holding one unit of c.
func Filled(c Color) Slot {
	return Slot{color: c, filled: true}
}

// IsEmpty reports whether the slot holds nothing.
func (s Slot) IsEmpty() bool {
	return !s.filled
}

// Color returns the slot's color and whether the slot is filled.
func (s Slot) Color() (Color, bool) {
	return s.color, s.filled
}

// Vial represents one container of the puzzle.
type Vial struct {
	slots [Capacity]Slot

	// permissive bypasses the color-matching rule in Pourable.
	// Generation runs permissive; game play does not.
	permissive bool
}

// New creates a vial filled from the bottom with the given contents.
func New(permissive bool, contents ...Color) (*Vial, error) {
	if len(contents) > Capacity {
		return nil, fmt.Errorf("%w: %d units for %d slots", ErrOverfill, len(contents), Capacity)
	}

	v := &Vial{permissive: permissive}
	for i, c := range contents {
		if err := ValidateColor(c); err != nil {
			return nil, fmt.Errorf("unit %d: %w", i, err)
		}
		v.slots[i] = Filled(c)
	}
	return v, nil
}

// NewFull creates a sorted vial holding Capacity units of c.
func NewFull(c Color, permissive bool) *Vial {
	v := &Vial{permissive: permissive}
	for i := 0; i < Capacity; i++ {
		v.slots[i] = Filled(c)
	}
	return v
}

// NewEmpty creates a vial with every slot empty.
func NewEmpty(permissive bool) *Vial {
	return &Vial{permissive: permissive}
}

// Clone creates an independent copy of the Vial.
func (v *Vial) Clone() *Vial {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}

// Permissive reports whether the color-matching rule is bypassed.
func (v *Vial) Permissive() bool {
	return v.permissive
}

// SetPermissive switches between generation mode (true) and game-play mode (false).
func (v *Vial) SetPermissive(permissive bool) {
	v.permissive = permissive
}

// Pourable reports whether a unit of c may be placed at target, which is
// always the index of the first empty slot.
func (v *Vial) Pourable(c Color, target int) bool {
	if v.IsEmpty() || v.permissive {
		return true
	}
	if target <= 0 || target > Capacity {
		return false
	}
	below, ok := v.slots[target-1].Color()
	return ok && below == c
}

// PourIn places a unit of c on top of the vial.
// Returns false without touching the vial if it is full or c may not go on top.
func (v *Vial) PourIn(c Color) bool {
	i := v.firstEmpty()
	if i == Capacity {
		return false
	}
	if !v.Pourable(c, i) {
		return false
	}
	v.slots[i] = Filled(c)
	return true
}

// PourOut removes and returns the top unit.
// The boolean is false if the vial was already empty.
func (v *Vial) PourOut() (Color, bool) {
	i := v.firstEmpty()
	if i == 0 {
		return 0, false
	}
	c, _ := v.slots[i-1].Color()
	v.slots[i-1] = EmptySlot()
	return c, true
}

// Top returns the topmost unit without removing it.
func (v *Vial) Top() (Color, bool) {
	i := v.firstEmpty()
	if i == 0 {
		return 0, false
	}
	return v.slots[i-1].Color()
}

// IsEmpty reports whether every slot is empty.
func (v *Vial) IsEmpty() bool {
	return v.slots[0].IsEmpty()
}

// HasSpace reports whether at least one slot is empty.
func (v *Vial) HasSpace() bool {
	return v.slots[Capacity-1].IsEmpty()
}

// EmptySlotCount returns the number of empty slots.
func (v *Vial) EmptySlotCount() int {
	count := 0
	for _, s := range v.slots {
		if s.IsEmpty() {
			count++
		}
	}
	return count
}

// Len returns the number of filled slots.
func (v *Vial) Len() int {
	return Capacity - v.EmptySlotCount()
}

// Slot returns the slot at index i, bottom first.
// Out-of-range indexes read as empty.
func (v *Vial) Slot(i int) Slot {
	if i < 0 || i >= Capacity {
		return EmptySlot()
	}
	return v.slots[i]
}

// Contents returns the filled units, bottom first.
func (v *Vial) Contents() []Color {
	contents := make([]Color, 0, Capacity)
	for _, s := range v.slots {
		c, ok := s.Color()
		if !ok {
			break
		}
		contents = append(contents, c)
	}
	return contents
}

// String returns exactly Capacity runes, EmptySymbol for empty slots.
func (v *Vial) String() string {
	var sb strings.Builder
	sb.Grow(Capacity)

	for _, s := range v.slots {
		if c, ok := s.Color(); ok {
			sb.WriteRune(rune(c))
		} else {
			sb.WriteRune(EmptySymbol)
		}
	}

	return sb.String()
}

// firstEmpty returns the index of the first empty slot, or Capacity if full.
func (v *Vial) firstEmpty() int {
	for i, s := range v.slots {
		if s.IsEmpty() {
			return i
		}
	}
	return Capacity
}
