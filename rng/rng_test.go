package rng_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/rng"
)

// TestNew_Deterministic checks that equal seeds give equal streams and that
// seed 0 falls back to DefaultSeed.
func TestNew_Deterministic(t *testing.T) {
	a, b := rng.New(42), rng.New(42)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}

	z, d := rng.New(0), rng.New(rng.DefaultSeed)
	for i := 0; i < 32; i++ {
		assert.Equal(t, z.Int63(), d.Int63())
	}
}

func TestInt(t *testing.T) {
	src := rng.New(7)
	for i := 0; i < 100; i++ {
		v, err := rng.Int(src, 3, 6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 3)
		assert.Less(t, v, 6)
	}

	_, err := rng.Int(src, 5, 5)
	assert.ErrorIs(t, err, rng.ErrInvalidRange)
	_, err = rng.Int(nil, 0, 1)
	assert.ErrorIs(t, err, rng.ErrNilSource)
}

func TestInt_WideRange(t *testing.T) {
	src := rng.New(7)
	assert.NotPanics(t, func() {
		_, err := rng.Int(src, math.MinInt, math.MaxInt)
		assert.ErrorIs(t, err, rng.ErrInvalidRange)
	})

	v, err := rng.Int(src, -1, math.MaxInt)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, -1)
}

func TestPick(t *testing.T) {
	src := rng.New(3)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		v, err := rng.Pick(src, items)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 3, "every element should eventually be drawn")

	_, err := rng.Pick(src, []int{})
	assert.ErrorIs(t, err, rng.ErrEmptyPool)
	_, err = rng.Pick[int](nil, []int{1})
	assert.ErrorIs(t, err, rng.ErrNilSource)
}

// fixed is a Source that always returns the same value.
type fixed int

func (f fixed) Intn(int) int { return int(f) }

func TestCoin(t *testing.T) {
	assert.True(t, rng.Coin(fixed(0)))
	assert.False(t, rng.Coin(fixed(1)))
}
