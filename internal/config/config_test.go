package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, maze.AlgWilson, cfg.AlgorithmValue())
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoad_TOML(t *testing.T) {
	p := writeFile(t, "mazegrid.toml", `
rows = 6
columns = 8
algorithm = "sidewinder"
seed = 99
mask = ["1,1", "2, 3"]
solve = true
analyser = "frontier"
log_level = "debug"
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Rows)
	assert.Equal(t, 8, cfg.Columns)
	assert.Equal(t, maze.AlgSidewinder, cfg.AlgorithmValue())
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.Solve)
	assert.Equal(t, AnalyserFrontier, cfg.Analyser)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.True(t, cfg.Color, "unset keys keep defaults")

	locs, err := cfg.MaskLocations()
	require.NoError(t, err)
	assert.Equal(t, []grid.Location{grid.Loc(1, 1), grid.Loc(2, 3)}, locs)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrLoad)

	p := writeFile(t, "bad.toml", "rows = [")
	_, err = Load(p)
	assert.ErrorIs(t, err, ErrLoad)

	p = writeFile(t, "invalid.toml", `algorithm = "prim"`)
	_, err = Load(p)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_EnvLayering(t *testing.T) {
	p := writeFile(t, "mazegrid.toml", "rows = 6\ncolumns = 6\n")
	env := writeFile(t, ".env", "MAZEGRID_ROWS=12\nMAZEGRID_ALGORITHM=binary-tree\n")
	t.Setenv("MAZEGRID_ALGORITHM", "aldous-broder")

	cfg, err := Load(p, env, filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Rows, ".env over TOML")
	assert.Equal(t, 6, cfg.Columns)
	assert.Equal(t, maze.AlgAldousBroder, cfg.AlgorithmValue(), "process env over .env")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		"MAZEGRID_COLUMNS":   " 4 ",
		"MAZEGRID_SEED":      "-7",
		"MAZEGRID_MAX_STEPS": "500",
		"MAZEGRID_SOLVE":     "true",
		"MAZEGRID_COLOR":     "0",
		"MAZEGRID_MASK":      "0,1; 2,2;",
		"MAZEGRID_ANALYSER":  "frontier",
	}))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Columns)
	assert.Equal(t, int64(-7), cfg.Seed)
	assert.Equal(t, 500, cfg.MaxSteps)
	assert.True(t, cfg.Solve)
	assert.False(t, cfg.Color)
	assert.Equal(t, []string{"0,1", "2,2"}, cfg.Mask)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv_ParseErrors(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		"MAZEGRID_ROWS":  "ten",
		"MAZEGRID_SEED":  "x",
		"MAZEGRID_SOLVE": "maybe",
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "MAZEGRID_ROWS")
	assert.Contains(t, err.Error(), "MAZEGRID_SEED")
	assert.Contains(t, err.Error(), "MAZEGRID_SOLVE")
	assert.Equal(t, 10, cfg.Rows, "bad values leave fields untouched")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative columns", func(c *Config) { c.Columns = -1 }},
		{"negative max steps", func(c *Config) { c.MaxSteps = -1 }},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "kruskal" }},
		{"unknown analyser", func(c *Config) { c.Analyser = "astar" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"mask without comma", func(c *Config) { c.Mask = []string{"3"} }},
		{"mask not numeric", func(c *Config) { c.Mask = []string{"a,b"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
