// Package randutil centralises how the engine derives seeded random sources
// and draws dice.
package randutil

import (
	rand "math/rand/v2"
	"slices"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15

	// Faces is the number of faces on every die in the game.
	Faces = 6
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG needs two 64-bit seeds; both are derived here so that every
// call site gets the same reproducible sequence for the same seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed unless it is zero, in which case a time-based seed is
// returned. Callers log the result so any run can be replayed.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Derive returns the n-th child seed of parent. The simulator uses it to give
// every match an independent, replayable source.
func Derive(parent int64, n int) int64 {
	return int64(mix(uint64(parent) + uint64(n+1)*goldenRatio64))
}

// RollDice draws n faces in 1..Faces and returns them sorted ascending.
func RollDice(rng *rand.Rand, n int) []int {
	if n <= 0 {
		return nil
	}
	faces := make([]int, n)
	for i := range faces {
		faces[i] = rng.IntN(Faces) + 1
	}
	slices.Sort(faces)
	return faces
}

// Shuffle permutes values in place.
func Shuffle[T any](rng *rand.Rand, values []T) {
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
