package genetic

import (
	"math/rand/v2"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
)

type mutator interface {
	// Perturbs at most one session's room, day and slot in place. Reports whether a session was moved.
	Mutate(rng *rand.Rand, candidate model.Candidate) bool
}

func newMutator(catalog *model.Catalog, indexer indexer, mutationRate float64, maxAttempts uint64) mutator {
	return &boundedMutator{
		catalog:      catalog,
		indexer:      indexer,
		mutationRate: mutationRate,
		maxAttempts:  maxAttempts,
	}
}

type boundedMutator struct {
	catalog      *model.Catalog
	indexer      indexer
	mutationRate float64
	maxAttempts  uint64
}

func (mutator *boundedMutator) Mutate(rng *rand.Rand, candidate model.Candidate) bool {
	if len(candidate) == 0 || rng.Float64() >= mutator.mutationRate {
		return false
	}

	index := rng.IntN(len(candidate))
	session := candidate[index]

	// Occupancy of every other session
	occupancy := occupancyOf(mutator.indexer, candidate)
	occupancy.remove(session)

	for range mutator.maxAttempts {
		room, day, slot := draw(rng, mutator.catalog)
		if occupancy.free(room, session.Teacher, session.Section, day, slot) && mutator.catalog.Fits(session.Section, room) {
			candidate[index].Room, candidate[index].Day, candidate[index].Slot = room, day, slot
			return true
		}
	}

	return false
}
