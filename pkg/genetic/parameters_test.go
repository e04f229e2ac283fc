package genetic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParametersFromEnvDefaults(t *testing.T) {
	parameters, err := ParametersFromEnv()

	require.NoError(t, err)
	assert.Equal(t, DefaultParameters(), parameters)
	assert.NoError(t, parameters.Validate())
}

func TestParametersFromEnvOverrides(t *testing.T) {
	//** Arrange
	t.Setenv("GA_POPULATION_SIZE", "40")
	t.Setenv("GA_MUTATION_RATE", "0.25")
	t.Setenv("GA_DEADLINE", "3s")
	t.Setenv("GA_REPAIR_ROOMS", "true")
	t.Setenv("GA_WEIGHT_SCATTER", "0")

	//** Act
	parameters, err := ParametersFromEnv()

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, uint64(40), parameters.PopulationSize)
	assert.Equal(t, 0.25, parameters.MutationRate)
	assert.Equal(t, 3*time.Second, parameters.Deadline)
	assert.True(t, parameters.RepairRooms)
	assert.Equal(t, uint64(0), parameters.Weights.Scatter)
	assert.Equal(t, uint64(1), parameters.Weights.BackToBack)
	assert.Equal(t, uint64(500), parameters.Generations)
}

func TestParametersFromEnvMalformed(t *testing.T) {
	t.Setenv("GA_GENERATIONS", "many")

	_, err := ParametersFromEnv()

	assert.Error(t, err)
}

func TestParametersValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Parameters)
		valid  bool
	}{
		{name: "Defaults", modify: func(*Parameters) {}, valid: true},
		{name: "Odd population", modify: func(p *Parameters) { p.PopulationSize = 11 }, valid: false},
		{name: "Population of one", modify: func(p *Parameters) { p.PopulationSize = 1 }, valid: false},
		{name: "Zero generations", modify: func(p *Parameters) { p.Generations = 0 }, valid: false},
		{name: "Mutation rate above one", modify: func(p *Parameters) { p.MutationRate = 1.5 }, valid: false},
		{name: "Negative crossover rate", modify: func(p *Parameters) { p.CrossoverRate = -0.1 }, valid: false},
		{name: "Zero attempts", modify: func(p *Parameters) { p.MaxAttempts = 0 }, valid: false},
		{name: "Elite as large as population", modify: func(p *Parameters) { p.EliteCount = p.PopulationSize }, valid: false},
		{name: "Some elites", modify: func(p *Parameters) { p.EliteCount = 4 }, valid: true},
		{name: "Negative workers", modify: func(p *Parameters) { p.Workers = -1 }, valid: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			parameters := DefaultParameters()
			testCase.modify(&parameters)

			err := parameters.Validate()

			if testCase.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
