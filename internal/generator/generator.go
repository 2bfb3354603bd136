package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/gaidukev/Water-Puzzle-Solver/internal/board"
	"github.com/gaidukev/Water-Puzzle-Solver/internal/vial"
)

const (
	DefaultSteps      = 150
	DefaultSpareVials = 2
)

var (
	ErrNoColors         = errors.New("at least one color is required")
	ErrDuplicateColor   = errors.New("colors must be distinct")
	ErrInvalidConfig    = errors.New("vial count must be at least the number of colors")
	ErrInvalidSteps     = errors.New("shuffle steps must be non-negative")
	ErrAlreadyGenerated = errors.New("generator has already run")
)

// Stats summarizes the work done by the last Generate call.
type Stats struct {
	Steps  int // Steps is the number of random walk iterations
	Moves  int // Moves counts units actually poured during the walk
	Idle   int // Idle counts steps whose source vial was empty
	Wasted int // Wasted counts steps that found no receiver
	Drains int // Drains counts units poured while normalizing
}

// Generator creates scrambled vial puzzle boards.
//
// Every vial is permissive while the generator owns it, so the walk pours
// colors on top of each other freely. The resulting board is therefore not
// guaranteed to be solvable under game rules.
type Generator struct {
	options  *Options
	rng      Source
	logger   *zap.Logger
	vials    []*vial.Vial
	required int
	stage    Stage
	stats    Stats
}

// New creates a generator holding one full vial per color followed by the
// empty vials. Returns an error if the configuration is invalid.
func New(options *Options) (*Generator, error) {
	if options == nil {
		return nil, ErrNoColors
	}
	if err := validateOptions(options); err != nil {
		return nil, err
	}

	rng := options.Rand
	if rng == nil {
		seed := options.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Generator{
		options:  options,
		rng:      rng,
		logger:   logger,
		vials:    make([]*vial.Vial, 0, options.Vials),
		required: options.Vials - len(options.Colors),
		stage:    Built,
	}

	for _, c := range options.Colors {
		g.vials = append(g.vials, vial.NewFull(c, true))
	}
	for n := 0; n < g.required; n++ {
		g.vials = append(g.vials, vial.NewEmpty(true))
	}

	g.logger.Debug("generator built",
		zap.Int("colors", len(options.Colors)),
		zap.Int("vials", options.Vials),
		zap.Int("required_empty", g.required))

	return g, nil
}

// validateOptions rejects configurations that cannot produce a board.
func validateOptions(options *Options) error {
	if len(options.Colors) == 0 {
		return ErrNoColors
	}

	seen := make(map[vial.Color]struct{}, len(options.Colors))
	for _, c := range options.Colors {
		if err := vial.ValidateColor(c); err != nil {
			return err
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("%w: %q appears twice", ErrDuplicateColor, rune(c))
		}
		seen[c] = struct{}{}
	}

	if options.Vials < len(options.Colors) {
		return fmt.Errorf("%w: %d vials for %d colors", ErrInvalidConfig, options.Vials, len(options.Colors))
	}
	if options.Steps < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, options.Steps)
	}
	return nil
}

// Generate shuffles the board for the given number of steps and then
// normalizes it so exactly RequiredEmpty vials are empty.
// It may only be called once per generator.
func (g *Generator) Generate(steps int) error {
	if g.stage != Built {
		return fmt.Errorf("%w: stage is %s", ErrAlreadyGenerated, g.stage)
	}
	if steps < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}

	g.stage = Shuffling
	g.RandomWalk(steps)

	g.stage = Normalizing
	g.NormalizeEmptyCount()

	g.stage = Finalized
	g.logger.Debug("board generated",
		zap.Int("steps", g.stats.Steps),
		zap.Int("moves", g.stats.Moves),
		zap.Int("idle", g.stats.Idle),
		zap.Int("wasted", g.stats.Wasted),
		zap.Int("drains", g.stats.Drains),
		zap.Int("disorder", board.Disorder(board.New(g.vials...))))

	return nil
}

// AttemptMove pours the top unit of the source vial into a randomly chosen
// other vial with space. Returns false, leaving every vial untouched, when no
// such receiver exists. An empty source with a receiver is a successful no-op.
func (g *Generator) AttemptMove(source int) bool {
	receiver := -1
	for _, idx := range g.rng.Perm(len(g.vials)) {
		if idx != source && g.vials[idx].HasSpace() {
			receiver = idx
			break
		}
	}
	if receiver < 0 {
		return false
	}

	src, dst := g.vials[source], g.vials[receiver]
	c, ok := src.PourOut()
	if !ok {
		g.stats.Idle++
		return true
	}
	if !dst.PourIn(c) {
		// Put the unit back where it came from; it was on top a moment ago.
		src.PourIn(c)
		return true
	}
	g.stats.Moves++
	return true
}

// RandomWalk attempts the given number of moves from uniformly random vials.
// Attempts that find no receiver are skipped, not retried.
func (g *Generator) RandomWalk(steps int) {
	for n := 0; n < steps; n++ {
		g.stats.Steps++
		if !g.AttemptMove(g.rng.Intn(len(g.vials))) {
			g.stats.Wasted++
		}
	}
}

// NormalizeEmptyCount empties vials until exactly RequiredEmpty are empty.
//
// Each round picks the vial with the most empty slots among those not yet
// emptied by an earlier round; the lowest index wins ties. Its units are
// poured, top first, into the first other unfinished vial with space.
func (g *Generator) NormalizeEmptyCount() {
	finalized := make([]bool, len(g.vials))

	for round := 0; round < g.required; round++ {
		pick, best := -1, -1
		for i, v := range g.vials {
			if finalized[i] {
				continue
			}
			if n := v.EmptySlotCount(); n > best {
				pick, best = i, n
			}
		}

		src := g.vials[pick]
		for !src.IsEmpty() {
			dst := g.firstReceiver(pick, finalized)
			if dst < 0 {
				// Unfinished vials always have room for every unit; panic on bugs.
				panic(fmt.Sprintf("generator: no receiver for vial %d in round %d", pick, round))
			}
			c, _ := src.PourOut()
			g.vials[dst].PourIn(c)
			g.stats.Drains++
		}
		finalized[pick] = true

		g.logger.Debug("vial emptied",
			zap.Int("round", round),
			zap.Int("vial", pick),
			zap.Int("empty_slots_before", best))
	}
}

// firstReceiver returns the lowest-index unfinished vial other than source
// that has space, or -1.
func (g *Generator) firstReceiver(source int, finalized []bool) int {
	for i, v := range g.vials {
		if i != source && !finalized[i] && v.HasSpace() {
			return i
		}
	}
	return -1
}

// Render returns one line per vial, in index order.
func (g *Generator) Render() []string {
	return board.New(g.vials...).Lines()
}

// Board returns a copy of the current board.
func (g *Generator) Board() *board.Board {
	return board.New(g.vials...).Clone()
}

// RequiredEmpty returns the number of vials that end up empty.
func (g *Generator) RequiredEmpty() int {
	return g.required
}

// Stage returns the generator's position in the generation process.
func (g *Generator) Stage() Stage {
	return g.stage
}

// Stats returns counters for the work done so far.
func (g *Generator) Stats() Stats {
	return g.stats
}

// GenerateWithColors is a convenience function to generate a board with
// default options for the given colors.
func GenerateWithColors(colors []vial.Color) (*board.Board, error) {
	gen, err := New(DefaultOptions(colors))
	if err != nil {
		return nil, err
	}
	if err := gen.Generate(gen.options.Steps); err != nil {
		return nil, err
	}
	return gen.Board(), nil
}
