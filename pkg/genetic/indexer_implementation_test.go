package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexUniqueAndDense(t *testing.T) {
	for range 10 {
		//** Arrange
		var Entities uint64 = uint64(rand.Intn(20) + 1)
		var Days uint64 = uint64(rand.Intn(7) + 1)
		var Slots uint64 = uint64(rand.Intn(10) + 1)

		indexer := newIndexer(Days, Slots)
		seen := make(map[uint64]bool)

		for entity := range Entities {
			for day := range Days {
				for slot := range Slots {
					//** Act
					index := indexer.Index(entity, day, slot)

					//** Assert
					assert.False(t, seen[index], "index %v assigned twice", index)
					seen[index] = true
					assert.Less(t, index, Entities*Days*Slots)
				}
			}
		}

		// Indices are dense
		assert.Len(t, seen, int(Entities*Days*Slots))
		for index := range Entities * Days * Slots {
			assert.True(t, seen[index])
		}
	}
}
