package genetic

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"go.uber.org/zap"
)

type geneticTimetabler struct {
	parameters Parameters
	logger     *zap.Logger
}

func NewGeneticTimetabler(parameters Parameters, logger *zap.Logger) model.Timetabler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &geneticTimetabler{
		parameters: parameters,
		logger:     logger,
	}
}

// engine bundles the operators of one run, all bound to the same catalog
type engine struct {
	constructor  candidateConstructor
	evaluator    fitnessEvaluator
	selector     parentSelector
	recombinator recombinator
	mutator      mutator
	repairer     *roomRepairer
}

func (timetabler *geneticTimetabler) newEngine(catalog *model.Catalog) engine {
	parameters := timetabler.parameters
	indexer := newIndexer(catalog.Days, catalog.SlotsPerDay)

	return engine{
		constructor:  newCandidateConstructor(catalog, indexer, parameters.MaxAttempts),
		evaluator:    newFitnessEvaluator(catalog, indexer, parameters.Weights),
		selector:     newParentSelector(),
		recombinator: newRecombinator(uint64(catalog.TargetSessions()), parameters.CrossoverRate),
		mutator:      newMutator(catalog, indexer, parameters.MutationRate, parameters.MaxAttempts),
		repairer:     newRoomRepairer(catalog, indexer),
	}
}

func (timetabler *geneticTimetabler) Build(ctx context.Context, catalog *model.Catalog) (model.Candidate, model.Report, error) {
	parameters := timetabler.parameters
	if catalog == nil {
		return nil, model.Report{}, &model.ConfigurationError{Reason: "no catalog"}
	} else if !catalog.Validated() {
		return nil, model.Report{}, &model.ConfigurationError{Reason: "catalog was not built through NewCatalog"}
	}
	if err := parameters.Validate(); err != nil {
		return nil, model.Report{}, err
	}

	start := time.Now()
	workers, size := parameters.workers(), int(parameters.PopulationSize)
	engine := timetabler.newEngine(catalog)

	seed := parameters.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	master := newRand(seed)

	runCtx := ctx
	if parameters.Deadline > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, parameters.Deadline)
		defer cancel()
	}

	//** Initializing
	state := model.Initializing
	population := make([]model.Candidate, size)
	fanOut(master, workers, size, func(i int, rng *rand.Rand) {
		population[i] = engine.constructor.Build(rng)
	})
	scores := scorePopulation(engine.evaluator, workers, population)

	omitted := 0
	for _, candidate := range population {
		omitted += catalog.TargetSessions() - len(candidate)
	}
	timetabler.logger.Debug("initial population built",
		zap.Uint64("seed", seed),
		zap.Int("population", size),
		zap.Int("target", catalog.TargetSessions()),
		zap.Int("omitted", omitted),
	)

	bestIndex := best(scores)
	bestEver, bestEverScore := population[bestIndex].Clone(), scores[bestIndex]

	//** Evolving
	state = model.Evolving
	elite := int(parameters.EliteCount)
	generations := uint64(0)
	for generations < parameters.Generations {
		if runCtx.Err() != nil {
			state = model.Cancelled
			break
		}

		next := make([]model.Candidate, size)
		for i, index := range ranking(scores)[:elite] {
			next[i] = population[index].Clone()
		}

		// Each pipeline writes children elite+2i and elite+2i+1; the last second child is dropped when it overflows
		pipelines := (size - elite + 1) / 2
		fanOut(master, workers, pipelines, func(i int, rng *rand.Rand) {
			parentA, parentB := engine.selector.Select(rng, scores)
			childA, childB := engine.recombinator.Crossover(rng, population[parentA], population[parentB])
			engine.mutator.Mutate(rng, childA)
			engine.mutator.Mutate(rng, childB)

			next[elite+2*i] = childA
			if elite+2*i+1 < size {
				next[elite+2*i+1] = childB
			}
		})

		population = next
		scores = scorePopulation(engine.evaluator, workers, population)
		generations++

		bestIndex = best(scores)
		if scores[bestIndex] > bestEverScore {
			bestEver, bestEverScore = population[bestIndex].Clone(), scores[bestIndex]
		}

		if interval := parameters.ReportInterval; interval > 0 && (generations-1)%interval == 0 {
			timetabler.logger.Info("generation",
				zap.Uint64("generation", generations-1),
				zap.Int64("best", scores[bestIndex]),
				zap.Int64("bestEver", bestEverScore),
			)
		}

		if scores[bestIndex] == 0 {
			state = model.Converged
			break
		}
	}
	if state == model.Evolving {
		state = model.ExhaustedGenerations
	}

	//** Result
	result := bestEver
	if parameters.RepairRooms {
		repaired, err := engine.repairer.Repair(result)
		if err != nil {
			return nil, model.Report{}, err
		}
		if engine.evaluator.Score(repaired) >= bestEverScore {
			result = repaired
		}
	}

	evaluation := engine.evaluator.Evaluate(result)
	report := model.Report{
		State:       state,
		Generations: generations,
		BestScore:   evaluation.Score,
		Evaluation:  evaluation,
		Placed:      len(result),
		Target:      catalog.TargetSessions(),
		Duration:    time.Since(start),
	}
	timetabler.logger.Info("timetable built",
		zap.Stringer("state", state),
		zap.Uint64("generations", generations),
		zap.Int64("score", report.BestScore),
		zap.Uint64("hard", evaluation.Hard()),
		zap.Int("placed", report.Placed),
		zap.Int("target", report.Target),
		zap.Duration("duration", report.Duration),
	)

	// A run stopped by its own deadline is a normal outcome; a caller cancellation is reported
	if state == model.Cancelled && ctx.Err() != nil {
		return result, report, ctx.Err()
	}
	return result, report, nil
}

func (timetabler *geneticTimetabler) Verify(timetable model.Candidate, catalog *model.Catalog) bool {
	if !catalog.Validated() {
		return false
	}
	indexer := newIndexer(catalog.Days, catalog.SlotsPerDay)
	return verify(timetable, catalog, newFitnessEvaluator(catalog, indexer, timetabler.parameters.Weights))
}
