package genetic

import (
	"math/rand/v2"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
)

type recombinator interface {
	// Produces two children from two parents. Parents are never modified and children never alias them.
	Crossover(rng *rand.Rand, parentA, parentB model.Candidate) (childA, childB model.Candidate)
}

func newRecombinator(target uint64, crossoverRate float64) recombinator {
	return &singlePointRecombinator{
		target:        target,
		crossoverRate: crossoverRate,
	}
}

// singlePointRecombinator cuts both parents at the same demand instance. For fully placed parents this is the
// positional cut; when some demands were left out it still keeps every instance at most once per child.
type singlePointRecombinator struct {
	target        uint64
	crossoverRate float64
}

func (recombinator *singlePointRecombinator) Crossover(rng *rand.Rand, parentA, parentB model.Candidate) (model.Candidate, model.Candidate) {
	if recombinator.target == 0 || rng.Float64() >= recombinator.crossoverRate {
		return parentA.Clone(), parentB.Clone()
	}

	cut := rng.Uint64N(recombinator.target)
	headA, tailA := split(parentA, cut)
	headB, tailB := split(parentB, cut)

	childA := make(model.Candidate, 0, len(headA)+len(tailB))
	childA = append(append(childA, headA...), tailB...)
	childB := make(model.Candidate, 0, len(headB)+len(tailA))
	childB = append(append(childB, headB...), tailA...)

	return childA, childB
}

// split separates the sessions filling demands before the cut from the rest, preserving order
func split(candidate model.Candidate, cut uint64) (head, tail model.Candidate) {
	for _, session := range candidate {
		if session.Instance < cut {
			head = append(head, session)
		} else {
			tail = append(tail, session)
		}
	}
	return head, tail
}
