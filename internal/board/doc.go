// Package board holds an ordered collection of vials together with the line
// format used to print and parse it: one line per vial, exactly
// vial.Capacity runes per line, vial.EmptySymbol marking empty slots.
package board
