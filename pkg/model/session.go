package model

import "slices"

// Session is one placed unit of instruction. Instance is the position of the demand it fills in Catalog.Demands().
type Session struct {
	Instance uint64
	Section  uint64
	Subject  uint64
	Room     uint64
	Day      uint64
	Slot     uint64
	Teacher  uint64
}

// Candidate is one complete timetable attempt. Order does not matter for scoring but drives crossover and mutation.
type Candidate []Session

func (candidate Candidate) Clone() Candidate {
	return slices.Clone(candidate)
}
