package genetic

import (
	"math/rand/v2"
	"sort"

	"github.com/samber/lo"
)

type parentSelector interface {
	// Picks two parent indices, independently and with replacement, biased toward higher scores
	Select(rng *rand.Rand, scores []int64) (parentA, parentB int)
}

func newParentSelector() parentSelector {
	return &rouletteSelector{}
}

// rouletteSelector samples proportionally to scores shifted by |min|+1, so every weight is strictly positive
type rouletteSelector struct{}

func (selector *rouletteSelector) Select(rng *rand.Rand, scores []int64) (int, int) {
	cumulative := rouletteWheel(scores)
	return spin(rng, cumulative), spin(rng, cumulative)
}

func rouletteWheel(scores []int64) []int64 {
	shift := abs(lo.Min(scores)) + 1

	cumulative := make([]int64, len(scores))
	total := int64(0)
	for i, score := range scores {
		total += score + shift
		cumulative[i] = total
	}
	return cumulative
}

func spin(rng *rand.Rand, cumulative []int64) int {
	pick := rng.Int64N(cumulative[len(cumulative)-1])
	return sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > pick
	})
}

func abs(value int64) int64 {
	if value < 0 {
		return -value
	}
	return value
}
