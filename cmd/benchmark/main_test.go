package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTestsSkipsUnresolvable(t *testing.T) {
	tests := getTests(catalogsDirectory)

	names := make([]string, 0, len(tests))
	for _, test := range tests {
		names = append(names, filepath.Base(test.Name))
		assert.Positive(t, test.Target)
	}
	assert.ElementsMatch(t, []string{"default.json", "workload.yaml"}, names)
}

func TestGetConfigurationsAreValid(t *testing.T) {
	for _, configuration := range getConfigurations() {
		assert.NoError(t, configuration.Parameters.Validate(), configuration.Name)
	}
}

func TestMeasure(t *testing.T) {
	//** Arrange
	test := getTests(catalogsDirectory)[0]
	parameters := getConfigurations()[0].Parameters
	parameters.PopulationSize = 10
	parameters.Generations = 5
	parameters.Seed = 9

	//** Act
	result := measure(test, "tiny", parameters)

	//** Assert
	assert.Equal(t, test.Name, result.Test)
	assert.Equal(t, "tiny", result.Configuration)
	assert.Equal(t, uint64(9), result.Seed)
	assert.LessOrEqual(t, result.Generations, uint64(5))
	assert.LessOrEqual(t, result.Placed, result.Target)
	assert.LessOrEqual(t, result.Score, int64(0))
}

func TestSummarize(t *testing.T) {
	results := []BenchmarkResult{
		{Test: "b", Configuration: "baseline", Duration: 10, Score: -4, Valid: true},
		{Test: "a", Configuration: "elitism", Duration: 30, Score: -9},
		{Test: "b", Configuration: "baseline", Duration: 20, Score: -2},
	}

	summaries := summarize(results)

	assert.Equal(t, []Summary{
		{Test: "a", Configuration: "elitism", Duration: 30 * time.Millisecond, Score: -9, Valid: 0},
		{Test: "b", Configuration: "baseline", Duration: 15 * time.Millisecond, Score: -2, Valid: 1},
	}, summaries)
}

func TestToCsv(t *testing.T) {
	//** Arrange
	path := filepath.Join(t.TempDir(), "results.csv")
	results := []BenchmarkResult{
		{Test: "default.json", Configuration: "baseline", State: "exhausted-generations", Score: -12, Duration: 140},
		{Test: "workload.yaml", Configuration: "repair", State: "converged", Valid: true, Memory: 1.5},
	}

	//** Act
	toCsv(results, path)

	//** Assert
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	read := []BenchmarkResult{}
	require.NoError(t, gocsv.UnmarshalFile(file, &read))
	assert.Equal(t, results, read)
}
