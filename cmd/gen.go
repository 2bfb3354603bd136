package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaidukev/Water-Puzzle-Solver/internal/board"
	"github.com/gaidukev/Water-Puzzle-Solver/internal/config"
	"github.com/gaidukev/Water-Puzzle-Solver/internal/generator"
	"github.com/gaidukev/Water-Puzzle-Solver/internal/logging"
	"github.com/gaidukev/Water-Puzzle-Solver/internal/render"
)

type genFlags struct {
	configFile string
	colors     string
	vials      int
	steps      int
	seed       int64
	number     int
	pretty     bool
	logLevel   string
}

func newGenCmd() *cobra.Command {
	flags := &genFlags{}

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate vial puzzle boards",
		Long: `Generate one or more scrambled vial puzzle boards.

Each board is printed one vial per line, bottom slot first, with '_' for
empty slots.

Examples:
  vialsort gen --colors RGBY
  vialsort gen --colors RGBYP --vials 8 -n 5
  vialsort gen --seed 42 --steps 300 --pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, flags)
		},
	}

	genCmd.Flags().StringVar(&flags.configFile, "config", "", "Path to YAML configuration file")
	genCmd.Flags().StringVarP(&flags.colors, "colors", "c", "", "Color symbols, one rune per color (e.g. RGBY)")
	genCmd.Flags().IntVar(&flags.vials, "vials", 0, "Total number of vials, empty ones included")
	genCmd.Flags().IntVar(&flags.steps, "steps", generator.DefaultSteps, "Number of random pours")
	genCmd.Flags().Int64Var(&flags.seed, "seed", 0, "Seed for reproducible boards (0 = random)")
	genCmd.Flags().IntVarP(&flags.number, "number", "n", 1, "Number of boards to generate")
	genCmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Color the output for a terminal")
	genCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return genCmd
}

// overrides returns CLI overrides for the flags the user actually set.
func (f *genFlags) overrides(cmd *cobra.Command) *config.CLIOverrides {
	o := &config.CLIOverrides{ConfigFile: f.configFile}
	changed := cmd.Flags().Changed

	if changed("colors") {
		o.Colors = &f.colors
	}
	if changed("vials") {
		o.Vials = &f.vials
	}
	if changed("steps") {
		o.Steps = &f.steps
	}
	if changed("seed") {
		o.Seed = &f.seed
	}
	if changed("number") {
		o.Count = &f.number
	}
	if changed("pretty") {
		o.Pretty = &f.pretty
	}
	if changed("log-level") {
		o.LogLevel = &f.logLevel
	}
	return o
}

func runGen(cmd *cobra.Command, flags *genFlags) error {
	cfg, err := config.Load(flags.overrides(cmd))
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	out := cmd.OutOrStdout()
	var styler *render.Renderer
	if cfg.Pretty {
		styler = render.New(out, cfg.Colors)
	}

	for i := 0; i < cfg.Count; i++ {
		opts := cfg.GeneratorOptions(i)
		opts.Logger = logger.With(zap.Int("board", i+1))

		gen, err := generator.New(opts)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		if err := gen.Generate(opts.Steps); err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := writeBoard(out, i+1, gen, styler); err != nil {
			return err
		}
	}

	logger.Info("boards generated",
		zap.Int("count", cfg.Count),
		zap.Int("colors", len(cfg.Colors)),
		zap.Int("vials", cfg.Vials),
		zap.Int("steps", cfg.Steps))

	return nil
}

// writeBoard prints a header line followed by one line per vial.
func writeBoard(w io.Writer, n int, gen *generator.Generator, styler *render.Renderer) error {
	b := gen.Board()
	_, err := fmt.Fprintf(w, "Board #%d (colors: %d, vials: %d, empty: %d, disorder: %d):\n",
		n, b.Len()-gen.RequiredEmpty(), b.Len(), b.EmptyCount(), board.Disorder(b))
	if err != nil {
		return err
	}

	body := strings.Join(gen.Render(), "\n")
	if styler != nil {
		body = styler.Board(b)
	}
	_, err = fmt.Fprintln(w, body)
	return err
}
