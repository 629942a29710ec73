package randutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for range 100 {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestRollDice(t *testing.T) {
	rng := New(7)

	t.Run("sorted faces in range", func(t *testing.T) {
		for range 200 {
			faces := RollDice(rng, 8)
			require.Len(t, faces, 8)
			assert.True(t, slices.IsSorted(faces))
			for _, f := range faces {
				assert.GreaterOrEqual(t, f, 1)
				assert.LessOrEqual(t, f, Faces)
			}
		}
	})

	t.Run("zero dice", func(t *testing.T) {
		assert.Empty(t, RollDice(rng, 0))
		assert.Empty(t, RollDice(rng, -1))
	})

	t.Run("every face appears", func(t *testing.T) {
		seen := map[int]bool{}
		for range 100 {
			for _, f := range RollDice(rng, 8) {
				seen[f] = true
			}
		}
		assert.Len(t, seen, Faces)
	})
}

func TestDerive(t *testing.T) {
	assert.Equal(t, Derive(99, 3), Derive(99, 3))
	assert.NotEqual(t, Derive(99, 3), Derive(99, 4))
	assert.NotEqual(t, Derive(99, 0), Derive(100, 0))
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(5), Seed(5))
	assert.NotZero(t, Seed(0))
}

func TestShufflePreservesElements(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(New(3), values)
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, sorted)
}
