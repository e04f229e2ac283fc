package genetic

import "github.com/limaJavier/genetic-timetabling/pkg/model"

type fitnessEvaluator interface {
	// Tallies every constraint violation of the candidate
	Evaluate(candidate model.Candidate) model.Evaluation

	// Returns the negated weighted tally; zero means no violations and more negative is worse
	Score(candidate model.Candidate) int64
}

func newFitnessEvaluator(catalog *model.Catalog, indexer indexer, weights Weights) fitnessEvaluator {
	return &fitnessEvaluatorStandard{
		catalog: catalog,
		indexer: indexer,
		weights: weights,
	}
}
