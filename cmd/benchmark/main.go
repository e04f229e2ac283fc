package main

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/genetic-timetabling/pkg/genetic"
	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/samber/lo"
)

const (
	catalogsDirectory         = "../../test/catalogs/"
	resultsFile               = "benchmark_results.csv"
	MB                float64 = 1024 * 1024
)

var seeds = []uint64{1, 2, 3}

type TestMetadata struct {
	Name     string
	Catalog  *model.Catalog
	Rooms    int
	Sections int
	Subjects int
	Teachers int
	Target   int
}

type ParametersMetadata struct {
	Name       string
	Parameters genetic.Parameters
}

// BenchmarkResult is one line of the results file
type BenchmarkResult struct {
	Test          string  `csv:"Test"`
	Rooms         int     `csv:"Rooms"`
	Sections      int     `csv:"Sections"`
	Subjects      int     `csv:"Subjects"`
	Teachers      int     `csv:"Teachers"`
	Configuration string  `csv:"Configuration"`
	Population    uint64  `csv:"Population"`
	Mutation      float64 `csv:"Mutation"`
	Elite         uint64  `csv:"Elite"`
	Repair        bool    `csv:"Repair"`
	Seed          uint64  `csv:"Seed"`
	State         string  `csv:"State"`
	Generations   uint64  `csv:"Generations"`
	Score         int64   `csv:"Score"`
	Hard          uint64  `csv:"Hard"`
	Soft          uint64  `csv:"Soft"`
	Placed        int     `csv:"Placed"`
	Target        int     `csv:"Target"`
	Valid         bool    `csv:"Valid"`
	Duration      int64   `csv:"Duration(ms)"`
	Memory        float64 `csv:"Allocated(MB)"`
}

func main() {
	tests := getTests(catalogsDirectory)
	configurations := getConfigurations()
	results := make([]BenchmarkResult, 0, len(tests)*len(configurations)*len(seeds))

	for _, test := range tests {
		for _, configuration := range configurations {
			for _, seed := range seeds {
				fmt.Printf("Benchmarking test \"%v\" with configuration \"%v\" and seed \"%v\"\n", test.Name, configuration.Name, seed)

				parameters := configuration.Parameters
				parameters.Seed = seed
				results = append(results, measure(test, configuration.Name, parameters))
			}
		}
	}

	toCsv(results, resultsFile)

	for _, summary := range summarize(results) {
		fmt.Printf("%-40s %-18s %10v %6d %d/%d\n", summary.Test, summary.Configuration, summary.Duration, summary.Score, summary.Valid, len(seeds))
	}
}

// getTests loads every catalog of the directory that can be scheduled. Unresolvable catalogs are skipped.
func getTests(directory string) []TestMetadata {
	files, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	tests := make([]TestMetadata, 0, len(files))
	for _, file := range files {
		filename := filepath.Join(directory, file.Name())
		catalog, err := model.CatalogFromFile(filename)
		if err != nil {
			fmt.Printf("Skipping \"%v\": %v\n", filename, err)
			continue
		}

		tests = append(tests, TestMetadata{
			Name:     filename,
			Catalog:  catalog,
			Rooms:    len(catalog.Rooms),
			Sections: len(catalog.Sections),
			Subjects: len(catalog.Subjects),
			Teachers: len(catalog.Teachers),
			Target:   catalog.TargetSessions(),
		})
	}
	return tests
}

func getConfigurations() []ParametersMetadata {
	base := genetic.DefaultParameters()
	base.Generations = 200
	base.ReportInterval = 0

	with := func(name string, modify func(*genetic.Parameters)) ParametersMetadata {
		parameters := base
		modify(&parameters)
		return ParametersMetadata{Name: name, Parameters: parameters}
	}

	return []ParametersMetadata{
		with("baseline", func(*genetic.Parameters) {}),
		with("small-population", func(p *genetic.Parameters) { p.PopulationSize = 20 }),
		with("high-mutation", func(p *genetic.Parameters) { p.MutationRate = 0.5 }),
		with("elitism", func(p *genetic.Parameters) { p.EliteCount = 4 }),
		with("repair", func(p *genetic.Parameters) { p.RepairRooms = true }),
		with("hard-only", func(p *genetic.Parameters) { p.Weights = genetic.Weights{} }),
	}
}

func measure(test TestMetadata, configuration string, parameters genetic.Parameters) BenchmarkResult {
	timetabler := genetic.NewGeneticTimetabler(parameters, nil)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	timetable, report, err := timetabler.Build(context.Background(), test.Catalog)
	if err != nil {
		log.Fatalf("an error occurred at test \"%v\" using configuration \"%v\" and seed \"%v\": %v", test.Name, configuration, parameters.Seed, err)
	}

	runtime.ReadMemStats(&after)

	return BenchmarkResult{
		Test:          test.Name,
		Rooms:         test.Rooms,
		Sections:      test.Sections,
		Subjects:      test.Subjects,
		Teachers:      test.Teachers,
		Configuration: configuration,
		Population:    parameters.PopulationSize,
		Mutation:      parameters.MutationRate,
		Elite:         parameters.EliteCount,
		Repair:        parameters.RepairRooms,
		Seed:          parameters.Seed,
		State:         report.State.String(),
		Generations:   report.Generations,
		Score:         report.BestScore,
		Hard:          report.Evaluation.Hard(),
		Soft:          report.Evaluation.Soft(),
		Placed:        report.Placed,
		Target:        test.Target,
		Valid:         timetabler.Verify(timetable, test.Catalog),
		Duration:      report.Duration.Milliseconds(),
		Memory:        float64(after.TotalAlloc-before.TotalAlloc) / MB,
	}
}

type Summary struct {
	Test          string
	Configuration string
	Duration      time.Duration // Mean over seeds
	Score         int64         // Best over seeds
	Valid         int           // Seeds that produced a valid timetable
}

// summarize reduces the results of every seed to one line per test and configuration
func summarize(results []BenchmarkResult) []Summary {
	groups := lo.GroupBy(results, func(result BenchmarkResult) [2]string {
		return [2]string{result.Test, result.Configuration}
	})

	summaries := make([]Summary, 0, len(groups))
	for key, group := range groups {
		durations := lo.Map(group, func(result BenchmarkResult, _ int) int64 { return result.Duration })
		scores := lo.Map(group, func(result BenchmarkResult, _ int) int64 { return result.Score })
		summaries = append(summaries, Summary{
			Test:          key[0],
			Configuration: key[1],
			Duration:      time.Duration(lo.Sum(durations)/int64(len(group))) * time.Millisecond,
			Score:         slices.Max(scores),
			Valid:         lo.CountBy(group, func(result BenchmarkResult) bool { return result.Valid }),
		})
	}

	slices.SortFunc(summaries, func(a, b Summary) int {
		return cmp.Or(strings.Compare(a.Test, b.Test), strings.Compare(a.Configuration, b.Configuration))
	})
	return summaries
}

func toCsv(results []BenchmarkResult, path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		log.Panicf("cannot write CSV results: %v", err)
	}
}
