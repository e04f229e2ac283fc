package model

import "time"

// Evaluation is the violation tally of a candidate, one counter per constraint.
type Evaluation struct {
	RoomClashes      uint64
	TeacherClashes   uint64
	SectionClashes   uint64
	DailyOverload    uint64
	WeeklyOverextent uint64
	CapacityOverflow uint64

	BackToBack  uint64
	Scatter     uint64
	TeacherGaps uint64

	Score int64 // Negated weighted total; zero means no violations
}

// Hard is the number of hard-constraint violations.
func (evaluation Evaluation) Hard() uint64 {
	return evaluation.RoomClashes +
		evaluation.TeacherClashes +
		evaluation.SectionClashes +
		evaluation.DailyOverload +
		evaluation.WeeklyOverextent +
		evaluation.CapacityOverflow
}

// Soft is the unweighted number of soft-constraint penalties.
func (evaluation Evaluation) Soft() uint64 {
	return evaluation.BackToBack + evaluation.Scatter + evaluation.TeacherGaps
}

type State int

const (
	Initializing State = iota
	Evolving
	Converged
	ExhaustedGenerations
	Cancelled
)

var states = map[State]string{
	Initializing:         "initializing",
	Evolving:             "evolving",
	Converged:            "converged",
	ExhaustedGenerations: "exhausted-generations",
	Cancelled:            "cancelled",
}

func (state State) String() string {
	if name, ok := states[state]; ok {
		return name
	}
	return "unknown"
}

// Report describes how a timetable build ended.
type Report struct {
	State       State
	Generations uint64 // Completed generations
	BestScore   int64
	Evaluation  Evaluation // Breakdown of the returned timetable
	Placed      int        // Sessions in the returned timetable
	Target      int        // Sessions a fully placed timetable has
	Duration    time.Duration
}
