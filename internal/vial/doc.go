// Package vial models a single puzzle container: four slots filled
// contiguously from the bottom, poured into and out of in last-in/first-out
// order. A vial in permissive mode accepts any color on top; outside it a unit
// may only land on an empty vial or on a unit of the same color.
package vial
