package genetic

import (
	"math/rand/v2"
	"slices"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/sourcegraph/conc/pool"
)

// newRand builds an independent PCG stream. Seeds are drawn sequentially from the master stream before any fan-out,
// so a run is reproducible whatever the goroutine scheduling.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func drawSeeds(master *rand.Rand, count int) []uint64 {
	seeds := make([]uint64, count)
	for i := range seeds {
		seeds[i] = master.Uint64()
	}
	return seeds
}

// fanOut runs task(i, rng) for every i in [0, count) on at most workers goroutines. Each task gets its own stream and
// must write only to its own output slot.
func fanOut(master *rand.Rand, workers, count int, task func(i int, rng *rand.Rand)) {
	seeds := drawSeeds(master, count)

	p := pool.New().WithMaxGoroutines(workers)
	for i := range count {
		p.Go(func() {
			task(i, newRand(seeds[i]))
		})
	}
	p.Wait()
}

func scorePopulation(evaluator fitnessEvaluator, workers int, population []model.Candidate) []int64 {
	scores := make([]int64, len(population))

	p := pool.New().WithMaxGoroutines(workers)
	for i, candidate := range population {
		p.Go(func() {
			scores[i] = evaluator.Score(candidate)
		})
	}
	p.Wait()

	return scores
}

// best returns the index of the highest score, the first one on ties
func best(scores []int64) int {
	return slices.Index(scores, slices.Max(scores))
}

// ranking returns population indices ordered by descending score
func ranking(scores []int64) []int {
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}
	slices.SortStableFunc(indices, func(a, b int) int {
		if scores[a] > scores[b] {
			return -1
		} else if scores[a] < scores[b] {
			return 1
		}
		return 0
	})
	return indices
}

func verify(timetable model.Candidate, catalog *model.Catalog, evaluator fitnessEvaluator) bool {
	demands := catalog.Demands()
	filled := make(map[uint64]bool, len(timetable))

	for _, session := range timetable {
		// Check that:
		// - Session fills a known demand, once
		// - Section, subject and teacher are the demand's
		// - Room, day and slot lie inside the catalog's grid
		if session.Instance >= uint64(len(demands)) || filled[session.Instance] {
			return false
		}
		demand := demands[session.Instance]
		if session.Section != demand.Section ||
			session.Subject != demand.Subject ||
			session.Teacher != demand.Teacher ||
			session.Room >= uint64(len(catalog.Rooms)) ||
			session.Day >= catalog.Days ||
			session.Slot >= catalog.SlotsPerDay {
			return false
		}
		filled[session.Instance] = true
	}

	return evaluator.Evaluate(timetable).Hard() == 0
}
