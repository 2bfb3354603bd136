package generator

import (
	"go.uber.org/zap"

	"github.com/gaidukev/Water-Puzzle-Solver/internal/vial"
)

// Source supplies the randomness a Generator needs.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Perm(n int) []int
}

// Options configures board generation.
type Options struct {
	Colors []vial.Color // Colors gets one sorted vial each, in order
	Vials  int          // Vials is the total vial count, empty ones included
	Steps  int          // Steps bounds the random walk
	Seed   int64        // Seed for reproducible boards (0 = random)
	Rand   Source       // Rand overrides Seed when set
	Logger *zap.Logger  // Logger receives debug output; nil disables it
}

// DefaultOptions returns standard generator options for the given colors
// with two spare vials.
func DefaultOptions(colors []vial.Color) *Options {
	return &Options{
		Colors: colors,
		Vials:  len(colors) + DefaultSpareVials,
		Steps:  DefaultSteps,
		Seed:   0,
	}
}
