package genetic

import "github.com/limaJavier/genetic-timetabling/pkg/model"

// occupancy is the placement bookkeeping of one candidate under construction or mutation. It is never shared between
// candidates.
type occupancy struct {
	indexer indexer

	rooms    map[uint64]uint64 // Sessions per room occupancy index
	teachers map[uint64]uint64 // Sessions per teacher occupancy index
	sections map[uint64]uint64 // Sessions per section occupancy index

	teacherDaily    map[[2]uint64]uint64       // Sessions per (teacher, day)
	teacherDays     map[uint64]map[uint64]bool // Active days per teacher
	sectionSubjects map[[3]uint64]bool         // (section, day, subject) already taught
}

func newOccupancy(indexer indexer) *occupancy {
	return &occupancy{
		indexer:         indexer,
		rooms:           make(map[uint64]uint64),
		teachers:        make(map[uint64]uint64),
		sections:        make(map[uint64]uint64),
		teacherDaily:    make(map[[2]uint64]uint64),
		teacherDays:     make(map[uint64]map[uint64]bool),
		sectionSubjects: make(map[[3]uint64]bool),
	}
}

func occupancyOf(indexer indexer, candidate model.Candidate) *occupancy {
	occupancy := newOccupancy(indexer)
	for _, session := range candidate {
		occupancy.place(session)
	}
	return occupancy
}

func (occupancy *occupancy) place(session model.Session) {
	occupancy.rooms[occupancy.indexer.Index(session.Room, session.Day, session.Slot)]++
	occupancy.teachers[occupancy.indexer.Index(session.Teacher, session.Day, session.Slot)]++
	occupancy.sections[occupancy.indexer.Index(session.Section, session.Day, session.Slot)]++

	occupancy.teacherDaily[[2]uint64{session.Teacher, session.Day}]++
	if _, ok := occupancy.teacherDays[session.Teacher]; !ok {
		occupancy.teacherDays[session.Teacher] = make(map[uint64]bool)
	}
	occupancy.teacherDays[session.Teacher][session.Day] = true
	occupancy.sectionSubjects[[3]uint64{session.Section, session.Day, session.Subject}] = true
}

// remove undoes place for the time-grid counters. Workload and same-day-subject bookkeeping are construction-only and
// stay untouched.
func (occupancy *occupancy) remove(session model.Session) {
	decrement(occupancy.rooms, occupancy.indexer.Index(session.Room, session.Day, session.Slot))
	decrement(occupancy.teachers, occupancy.indexer.Index(session.Teacher, session.Day, session.Slot))
	decrement(occupancy.sections, occupancy.indexer.Index(session.Section, session.Day, session.Slot))
}

// free checks room, teacher and section exclusivity at (day, slot)
func (occupancy *occupancy) free(room, teacher, section, day, slot uint64) bool {
	return occupancy.rooms[occupancy.indexer.Index(room, day, slot)] == 0 &&
		occupancy.teachers[occupancy.indexer.Index(teacher, day, slot)] == 0 &&
		occupancy.sections[occupancy.indexer.Index(section, day, slot)] == 0
}

func (occupancy *occupancy) dailyLoad(teacher, day uint64) uint64 {
	return occupancy.teacherDaily[[2]uint64{teacher, day}]
}

func (occupancy *occupancy) activeDays(teacher uint64) uint64 {
	return uint64(len(occupancy.teacherDays[teacher]))
}

func (occupancy *occupancy) active(teacher, day uint64) bool {
	return occupancy.teacherDays[teacher][day]
}

func (occupancy *occupancy) taught(section, day, subject uint64) bool {
	return occupancy.sectionSubjects[[3]uint64{section, day, subject}]
}

func decrement(counters map[uint64]uint64, key uint64) {
	if counters[key] <= 1 {
		delete(counters, key)
		return
	}
	counters[key]--
}
