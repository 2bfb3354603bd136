package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gaidukev/Water-Puzzle-Solver/internal/generator"
	"github.com/gaidukev/Water-Puzzle-Solver/internal/vial"
)

const (
	defaultColors   = "ABCD"
	defaultCount    = 1
	defaultLogLevel = "info"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Colors   []vial.Color
	Vials    int
	Steps    int
	Seed     int64
	Count    int
	Pretty   bool
	LogLevel string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Colors   string `yaml:"colors"`
	Vials    *int   `yaml:"vials"`
	Steps    *int   `yaml:"steps"`
	Seed     *int64 `yaml:"seed"`
	Count    *int   `yaml:"count"`
	Pretty   *bool  `yaml:"pretty"`
	LogLevel string `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides. Nil fields are unset.
type CLIOverrides struct {
	ConfigFile string
	Colors     *string
	Vials      *int
	Steps      *int
	Seed       *int64
	Count      *int
	Pretty     *bool
	LogLevel   *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, err
		}
	}

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	colors, _ := parseColors(defaultColors)
	return Config{
		Colors:   colors,
		Vials:    len(colors) + generator.DefaultSpareVials,
		Steps:    generator.DefaultSteps,
		Seed:     0,
		Count:    defaultCount,
		LogLevel: defaultLogLevel,
	}
}

// GeneratorOptions converts the configuration into options for board n,
// counted from zero. A fixed seed is offset by n so every board differs.
func (c Config) GeneratorOptions(n int) *generator.Options {
	opts := generator.DefaultOptions(c.Colors)
	opts.Vials = c.Vials
	opts.Steps = c.Steps
	if c.Seed != 0 {
		opts.Seed = c.Seed + int64(n)
	}
	return opts
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.Colors != "" {
		colors, err := parseColors(yamlCfg.Colors)
		if err != nil {
			return fmt.Errorf("parse colors: %w", err)
		}
		cfg.Colors = colors
		cfg.Vials = len(colors) + generator.DefaultSpareVials
	}

	if yamlCfg.Vials != nil {
		cfg.Vials = *yamlCfg.Vials
	}

	if yamlCfg.Steps != nil {
		cfg.Steps = *yamlCfg.Steps
	}

	if yamlCfg.Seed != nil {
		cfg.Seed = *yamlCfg.Seed
	}

	if yamlCfg.Count != nil {
		cfg.Count = *yamlCfg.Count
	}

	if yamlCfg.Pretty != nil {
		cfg.Pretty = *yamlCfg.Pretty
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	if raw := strings.TrimSpace(os.Getenv("VIALSORT_COLORS")); raw != "" {
		colors, err := parseColors(raw)
		if err != nil {
			return fmt.Errorf("VIALSORT_COLORS: %w", err)
		}
		cfg.Colors = colors
		cfg.Vials = len(colors) + generator.DefaultSpareVials
	}

	if raw := strings.TrimSpace(os.Getenv("VIALSORT_VIALS")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			cfg.Vials = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("VIALSORT_STEPS")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			cfg.Steps = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("VIALSORT_SEED")); raw != "" {
		if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("VIALSORT_COUNT")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			cfg.Count = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("VIALSORT_LOG_LEVEL")); raw != "" {
		cfg.LogLevel = raw
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.Colors != nil && *overrides.Colors != "" {
		colors, err := parseColors(*overrides.Colors)
		if err != nil {
			return fmt.Errorf("parse colors: %w", err)
		}
		cfg.Colors = colors
		cfg.Vials = len(colors) + generator.DefaultSpareVials
	}

	if overrides.Vials != nil {
		cfg.Vials = *overrides.Vials
	}

	if overrides.Steps != nil {
		cfg.Steps = *overrides.Steps
	}

	if overrides.Seed != nil {
		cfg.Seed = *overrides.Seed
	}

	if overrides.Count != nil {
		cfg.Count = *overrides.Count
	}

	if overrides.Pretty != nil {
		cfg.Pretty = *overrides.Pretty
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if len(cfg.Colors) == 0 {
		return fmt.Errorf("colors cannot be empty")
	}
	if cfg.Vials < len(cfg.Colors) {
		return fmt.Errorf("%w: %d vials for %d colors", generator.ErrInvalidConfig, cfg.Vials, len(cfg.Colors))
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("%w: got %d", generator.ErrInvalidSteps, cfg.Steps)
	}
	if cfg.Count < 1 {
		return fmt.Errorf("board count must be positive, got %d", cfg.Count)
	}
	return nil
}

// parseColors turns a string of symbols into distinct colors, one per rune.
// Commas and whitespace between symbols are ignored.
func parseColors(raw string) ([]vial.Color, error) {
	colors := make([]vial.Color, 0, len(raw))
	seen := make(map[vial.Color]struct{})
	for _, r := range raw {
		if r == ',' || r == ' ' || r == '\t' {
			continue
		}
		c := vial.Color(r)
		if err := vial.ValidateColor(c); err != nil {
			return nil, err
		}
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("%w: %q appears twice", generator.ErrDuplicateColor, r)
		}
		seen[c] = struct{}{}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colors provided")
	}
	return colors, nil
}
