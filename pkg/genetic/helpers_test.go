package genetic

import (
	"math/rand/v2"
	"testing"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/stretchr/testify/require"
)

const catalogsDirectory = "../../test/catalogs/"

func newCatalog(t *testing.T, rawCatalog model.RawCatalog) *model.Catalog {
	t.Helper()
	catalog, err := model.ProcessRawCatalog(rawCatalog)
	require.NoError(t, err)
	return catalog
}

// gridCatalog has one section requiring the given subjects, all taught by a single teacher
func gridCatalog(t *testing.T, rooms, days, slots uint64, subjects ...string) *model.Catalog {
	t.Helper()
	rawCatalog := model.RawCatalog{
		Days:        days,
		SlotsPerDay: slots,
		Sections:    []model.RawSection{{Name: "64_A", Subjects: subjects}},
		Teachers:    []model.RawTeacher{{Name: "SAH", Subjects: subjects}},
	}
	for i := range rooms {
		rawCatalog.Rooms = append(rawCatalog.Rooms, model.RawRoom{Name: string(rune('A' + i))})
	}
	return newCatalog(t, rawCatalog)
}

func defaultCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	catalog, err := model.CatalogFromJson(catalogsDirectory + "default.json")
	require.NoError(t, err)
	return catalog
}

func workloadCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	catalog, err := model.CatalogFromYaml(catalogsDirectory + "workload.yaml")
	require.NoError(t, err)
	return catalog
}

func testRand(seed uint64) *rand.Rand {
	return newRand(seed)
}

func testParameters() Parameters {
	parameters := DefaultParameters()
	parameters.PopulationSize = 20
	parameters.Generations = 30
	parameters.Seed = 42
	parameters.Workers = 4
	return parameters
}
