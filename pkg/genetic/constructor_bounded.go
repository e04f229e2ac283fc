package genetic

import (
	"math/rand/v2"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
)

type boundedConstructor struct {
	catalog     *model.Catalog
	indexer     indexer
	maxAttempts uint64
}

func (constructor *boundedConstructor) Build(rng *rand.Rand) model.Candidate {
	demands := constructor.catalog.Demands()
	candidate := make(model.Candidate, 0, len(demands))
	occupancy := newOccupancy(constructor.indexer)

	for _, demand := range demands {
		for range constructor.maxAttempts {
			room, day, slot := draw(rng, constructor.catalog)
			if !constructor.acceptable(occupancy, demand, room, day, slot) {
				continue
			}

			session := model.Session{
				Instance: demand.Instance,
				Section:  demand.Section,
				Subject:  demand.Subject,
				Room:     room,
				Day:      day,
				Slot:     slot,
				Teacher:  demand.Teacher,
			}
			occupancy.place(session)
			candidate = append(candidate, session)
			break
		}
	}

	return candidate
}

func (constructor *boundedConstructor) acceptable(occupancy *occupancy, demand model.Demand, room, day, slot uint64) bool {
	maxDaily, maxDays := constructor.catalog.MaxClassesPerTeacherPerDay, constructor.catalog.MaxActiveDaysPerTeacherPerWeek

	// Check that:
	// - Room, teacher and section are not already booked in the day and slot
	// - Teacher stays below its daily cap
	// - Teacher stays within its active-days cap, unless the day is already active
	// - Section is not taught the same subject twice a day
	// - Section fits in the room
	return occupancy.free(room, demand.Teacher, demand.Section, day, slot) &&
		(maxDaily == 0 || occupancy.dailyLoad(demand.Teacher, day) < maxDaily) &&
		(maxDays == 0 || occupancy.activeDays(demand.Teacher) < maxDays || occupancy.active(demand.Teacher, day)) &&
		!occupancy.taught(demand.Section, day, demand.Subject) &&
		constructor.catalog.Fits(demand.Section, room)
}

// draw picks a uniform (room, day, slot) from the catalog's grid
func draw(rng *rand.Rand, catalog *model.Catalog) (room, day, slot uint64) {
	room = rng.Uint64N(uint64(len(catalog.Rooms)))
	day = rng.Uint64N(catalog.Days)
	slot = rng.Uint64N(catalog.SlotsPerDay)
	return room, day, slot
}
