package genetic

import (
	"math/rand/v2"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
)

type candidateConstructor interface {
	// Builds a candidate by random placement of every demand. Demands without an acceptable draw within the attempt
	// budget are left out, so the candidate may be shorter than the catalog's target.
	Build(rng *rand.Rand) model.Candidate
}

func newCandidateConstructor(catalog *model.Catalog, indexer indexer, maxAttempts uint64) candidateConstructor {
	return &boundedConstructor{
		catalog:     catalog,
		indexer:     indexer,
		maxAttempts: maxAttempts,
	}
}
