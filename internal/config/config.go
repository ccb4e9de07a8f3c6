// Package config resolves mazegrid settings from built-in defaults, an
// optional TOML file, .env files and MAZEGRID_* environment variables, in
// that order of increasing precedence. Command-line flags are applied on top
// by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MAZEGRID_"

// Analyser names accepted by Config.Analyser.
const (
	AnalyserFrontier = "frontier"
	AnalyserDijkstra = "dijkstra"
)

var (
	// ErrInvalidConfig indicates a value that failed validation or parsing.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrLoad indicates a configuration source could not be read.
	ErrLoad = errors.New("config: cannot load configuration")
)

// Config holds every tunable of a plant run.
type Config struct {
	Rows      int      `toml:"rows"`
	Columns   int      `toml:"columns"`
	Algorithm string   `toml:"algorithm"`
	Seed      int64    `toml:"seed"`      // 0 selects the default seed
	MaxSteps  int      `toml:"max_steps"` // 0 means unbounded
	Mask      []string `toml:"mask"`      // "row,column" entries
	Solve     bool     `toml:"solve"`
	Analyser  string   `toml:"analyser"`
	Color     bool     `toml:"color"`
	LogLevel  string   `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Rows:      10,
		Columns:   10,
		Algorithm: maze.AlgWilson.String(),
		Analyser:  AnalyserDijkstra,
		Color:     true,
		LogLevel:  "info",
	}
}

// Load layers path (skipped when empty), then envFiles, then the process
// environment over Default and validates the result. Missing env files are
// ignored; a missing TOML file is an error.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
		}
	}

	dotenv, err := readEnvFiles(envFiles)
	if err != nil {
		return cfg, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// readEnvFiles merges the files in order; earlier files win like godotenv.Load.
func readEnvFiles(paths []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, p := range paths {
		vals, err := godotenv.Read(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoad, p, err)
		}
		for k, v := range vals {
			if _, seen := out[k]; !seen {
				out[k] = v
			}
		}
	}
	return out, nil
}

// ApplyEnv overrides fields from EnvPrefix-ed keys found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, key, v))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, key, v))
				return
			}
			*dst = b
		}
	}

	num("ROWS", &c.Rows)
	num("COLUMNS", &c.Columns)
	num("MAX_STEPS", &c.MaxSteps)
	str("ALGORITHM", &c.Algorithm)
	str("ANALYSER", &c.Analyser)
	str("LOG_LEVEL", &c.LogLevel)
	flag("SOLVE", &c.Solve)
	flag("COLOR", &c.Color)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %sSEED=%q", ErrInvalidConfig, EnvPrefix, v))
		} else {
			c.Seed = n
		}
	}
	if v, ok := lookup(EnvPrefix + "MASK"); ok {
		c.Mask = splitMask(v)
	}
	return errors.Join(errs...)
}

// splitMask parses "r,c;r,c" into entries.
func splitMask(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, c.Rows, c.Columns)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps %d is negative", ErrInvalidConfig, c.MaxSteps)
	}
	if _, err := maze.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Analyser) {
	case AnalyserFrontier, AnalyserDijkstra:
	default:
		return fmt.Errorf("%w: unknown analyser %q", ErrInvalidConfig, c.Analyser)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if _, err := c.MaskLocations(); err != nil {
		return err
	}
	return nil
}

// MaskLocations parses Mask into grid locations.
func (c Config) MaskLocations() ([]grid.Location, error) {
	out := make([]grid.Location, 0, len(c.Mask))
	for _, entry := range c.Mask {
		r, col, ok := strings.Cut(entry, ",")
		if !ok {
			return nil, fmt.Errorf("%w: mask entry %q, want row,column", ErrInvalidConfig, entry)
		}
		row, err1 := strconv.Atoi(strings.TrimSpace(r))
		column, err2 := strconv.Atoi(strings.TrimSpace(col))
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: mask entry %q, want row,column", ErrInvalidConfig, entry)
		}
		out = append(out, grid.Loc(row, column))
	}
	return out, nil
}

// Level returns the parsed log level, InfoLevel when unparsable.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// AlgorithmValue returns the parsed algorithm; call after Validate.
func (c Config) AlgorithmValue() maze.Algorithm {
	alg, _ := maze.ParseAlgorithm(c.Algorithm)
	return alg
}
