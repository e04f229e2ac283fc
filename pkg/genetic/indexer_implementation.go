package genetic

type indexerImplementation struct {
	days  uint64
	slots uint64
}

func (indexer *indexerImplementation) Index(entity, day, slot uint64) uint64 {
	return slot + indexer.slots*day + indexer.slots*indexer.days*entity
}
