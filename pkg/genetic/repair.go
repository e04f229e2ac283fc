package genetic

import (
	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// roomRepairer reassigns rooms among sessions sharing a day and slot so that as many of them as possible get a
// distinct fitting room. Days, slots and teachers are never touched.
type roomRepairer struct {
	catalog *model.Catalog
	indexer indexer
}

func newRoomRepairer(catalog *model.Catalog, indexer indexer) *roomRepairer {
	return &roomRepairer{
		catalog: catalog,
		indexer: indexer,
	}
}

// Repair returns a repaired copy of the candidate
func (repairer *roomRepairer) Repair(candidate model.Candidate) (model.Candidate, error) {
	repaired := candidate.Clone()

	// Sessions grouped by time, keyed as the occupancy of entity zero
	simultaneous := lo.GroupBy(lo.Range(len(repaired)), func(index int) uint64 {
		return repairer.indexer.Index(0, repaired[index].Day, repaired[index].Slot)
	})

	for _, indices := range simultaneous {
		if !repairer.conflicting(repaired, indices) {
			continue
		}

		assignments, err := repairer.assignRooms(repaired, indices)
		if err != nil {
			return nil, err
		}
		for index, room := range assignments {
			repaired[index].Room = room
		}
	}

	return repaired, nil
}

// conflicting checks whether some room is used twice or some section does not fit its room
func (repairer *roomRepairer) conflicting(candidate model.Candidate, indices []int) bool {
	rooms := lo.Map(indices, func(index int, _ int) uint64 { return candidate[index].Room })
	return len(lo.Uniq(rooms)) < len(rooms) || lo.SomeBy(indices, func(index int) bool {
		return !repairer.catalog.Fits(candidate[index].Section, candidate[index].Room)
	})
}

// assignRooms finds a maximum matching between the sessions and the rooms they fit in. Unmatched sessions keep
// their room.
func (repairer *roomRepairer) assignRooms(candidate model.Candidate, indices []int) (map[int]uint64, error) {
	rooms := lo.Map(repairer.catalog.Rooms, func(room model.Room, _ int) uint64 { return room.Id })

	// Build neighbors predicate based on capacity
	neighbors := func(indexAny any, roomAny any) (bool, error) {
		index := indexAny.(int)
		room := roomAny.(uint64)

		return repairer.catalog.Fits(candidate[index].Section, room), nil
	}

	// Transform indices and rooms to slices of any
	indicesAny, roomsAny := lo.Map(indices, func(index int, _ int) any { return index }), lo.Map(rooms, func(room uint64, _ int) any { return room })

	graph, err := bipartitegraph.NewBipartiteGraph(indicesAny, roomsAny, neighbors)
	if err != nil {
		return nil, err
	}

	assignments := make(map[int]uint64, len(indices))
	for _, edge := range graph.LargestMatching() {
		sessionIndex, roomIndex := edge.Node1, edge.Node2-len(indices)
		assignments[indices[sessionIndex]] = rooms[roomIndex]
	}

	return assignments, nil
}
