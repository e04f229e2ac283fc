package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouletteWheelWeights(t *testing.T) {
	// Shifted by |min|+1: -4 -> 1, -2 -> 3, 0 -> 5
	assert.Equal(t, []int64{1, 4, 9}, rouletteWheel([]int64{-4, -2, 0}))
	// All-zero scores give every candidate a weight of one
	assert.Equal(t, []int64{1, 2, 3, 4}, rouletteWheel([]int64{0, 0, 0, 0}))
}

func TestSelectEqualScoresIsUniform(t *testing.T) {
	//** Arrange
	const candidates, trials = 10, 100000
	selector := newParentSelector()
	scores := make([]int64, candidates)
	for i := range scores {
		scores[i] = -7
	}
	rng := testRand(2024)
	counts := make([]float64, candidates)

	//** Act
	for range trials / 2 {
		parentA, parentB := selector.Select(rng, scores)
		counts[parentA]++
		counts[parentB]++
	}

	//** Assert
	expected := float64(trials) / candidates
	chiSquare := 0.0
	for _, count := range counts {
		chiSquare += (count - expected) * (count - expected) / expected
	}
	// Critical value of the chi-square distribution with 9 degrees of freedom at p = 0.001
	assert.Less(t, chiSquare, 27.88)
}

func TestSelectFavorsHigherScores(t *testing.T) {
	//** Arrange
	selector := newParentSelector()
	scores := []int64{-100, -50, 0}
	rng := testRand(11)
	counts := make([]int, len(scores))

	//** Act
	for range 10000 {
		parentA, parentB := selector.Select(rng, scores)
		counts[parentA]++
		counts[parentB]++
	}

	//** Assert
	assert.Less(t, counts[0], counts[1])
	assert.Less(t, counts[1], counts[2])
	// The worst candidate keeps a strictly positive chance
	assert.Positive(t, counts[0])
}

func TestSelectSingleCandidate(t *testing.T) {
	parentA, parentB := newParentSelector().Select(testRand(3), []int64{-12})

	assert.Equal(t, 0, parentA)
	assert.Equal(t, 0, parentB)
}
