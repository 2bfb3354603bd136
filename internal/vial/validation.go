package vial

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	ErrOverfill     = errors.New("too many units for vial capacity")
	ErrInvalidColor = errors.New("invalid color symbol")
	ErrGap          = errors.New("filled slot above an empty slot")
)

// ValidateColor checks that c can be used as a color symbol.
// The placeholder, whitespace and control runes are rejected.
func ValidateColor(c Color) error {
	r := rune(c)
	if r == EmptySymbol {
		return fmt.Errorf("%w: %q is reserved for empty slots", ErrInvalidColor, r)
	}
	if r == 0 || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return fmt.Errorf("%w: %q is not printable", ErrInvalidColor, r)
	}
	return nil
}

// Valid reports whether the vial satisfies the no-gaps invariant.
// Vials mutated only through PourIn and PourOut are always valid.
func (v *Vial) Valid() error {
	for i := 1; i < Capacity; i++ {
		if v.slots[i-1].IsEmpty() && !v.slots[i].IsEmpty() {
			return fmt.Errorf("%w: slot %d", ErrGap, i)
		}
	}
	return nil
}
