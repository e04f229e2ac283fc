package genetic

// indexer interface is design to give a unique index to an occupancy (entity, day, slot). An entity is a room, teacher
// or section id; each kind keeps its own index space.
type indexer interface {
	// Returns a unique index to a combination of occupancy attributes
	Index(entity, day, slot uint64) uint64
}

func newIndexer(days, slots uint64) indexer {
	return &indexerImplementation{
		days:  days,
		slots: slots,
	}
}
