package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/limaJavier/genetic-timetabling/pkg/export"
	"github.com/limaJavier/genetic-timetabling/pkg/genetic"
	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"go.uber.org/zap"
)

var (
	validFormats = []string{"", "json", "yaml"}
	validOutputs = []string{"json", "csv", "grid"}
	loaders      = map[string]func(string) (*model.Catalog, error){
		"":     model.CatalogFromFile,
		"json": model.CatalogFromJson,
		"yaml": model.CatalogFromYaml,
	}
	writers = map[string]func(io.Writer, model.Candidate, *model.Catalog) error{
		"json": export.WriteJSON,
		"csv":  export.WriteCSV,
		"grid": func(out io.Writer, timetable model.Candidate, catalog *model.Catalog) error {
			_, err := io.WriteString(out, export.RenderGrid(timetable, catalog))
			return err
		},
	}
)

func main() {
	// Environment first, flags on top
	parameters, err := genetic.ParametersFromEnv()
	if err != nil {
		log.Fatalf("cannot read parameters from environment: %v", err)
	}

	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the catalog file")
	formatPtr := flag.String("format", "", "Catalog format. Allowed values are: \"json\" and \"yaml\"; if empty, it's inferred from the file extension")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	outputPtr := flag.String("output", "json", "Output format. Allowed values are: \"json\" (per-section timetable), \"csv\" (one line per session) and \"grid\" (room by slot table per day), where \"json\" is the default")
	verbosePtr := flag.Bool("verbose", false, "Log with the development logger, including debug entries")
	flag.Uint64Var(&parameters.PopulationSize, "population", parameters.PopulationSize, "Candidates per generation (even, at least 2)")
	flag.Uint64Var(&parameters.Generations, "generations", parameters.Generations, "Maximum number of generations")
	flag.Float64Var(&parameters.MutationRate, "mutation", parameters.MutationRate, "Probability (between 0 and 1) of mutating each child")
	flag.Float64Var(&parameters.CrossoverRate, "crossover", parameters.CrossoverRate, "Probability (between 0 and 1) of recombining each pair of parents")
	flag.Uint64Var(&parameters.MaxAttempts, "attempts", parameters.MaxAttempts, "Random draws tried per placement before giving up")
	flag.Uint64Var(&parameters.EliteCount, "elite", parameters.EliteCount, "Best candidates copied unchanged into the next generation")
	flag.IntVar(&parameters.Workers, "workers", parameters.Workers, "Goroutines used per parallel step; 0 means one per CPU")
	flag.Uint64Var(&parameters.Seed, "seed", parameters.Seed, "Random seed; 0 means a random one")
	flag.Uint64Var(&parameters.ReportInterval, "interval", parameters.ReportInterval, "Generations between progress logs; 0 disables them")
	flag.DurationVar(&parameters.Deadline, "deadline", parameters.Deadline, "Wall-clock limit of the search; 0 means none")
	flag.BoolVar(&parameters.RepairRooms, "repair", parameters.RepairRooms, "Reassign rooms of the result by maximum matching")
	flag.Uint64Var(&parameters.Weights.BackToBack, "weight-back-to-back", parameters.Weights.BackToBack, "Penalty of a section's back-to-back sessions")
	flag.Uint64Var(&parameters.Weights.Scatter, "weight-scatter", parameters.Weights.Scatter, "Penalty of a section's sessions spread over different days")
	flag.Uint64Var(&parameters.Weights.TeacherGap, "weight-teacher-gap", parameters.Weights.TeacherGap, "Penalty of an idle gap in a teacher's day")
	flag.Parse()
	filePath := *filePathPtr
	format := strings.ToLower(*formatPtr)
	outFile := *outFilePathPtr
	output := strings.ToLower(*outputPtr)

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid format", format)
	} else if !slices.Contains(validOutputs, output) {
		log.Fatalf("%v is not a valid output", output)
	} else if err := parameters.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := newLogger(*verbosePtr)
	defer logger.Sync()

	// Extract catalog
	catalog, err := loaders[format](filePath)
	if err != nil {
		log.Fatalf("cannot parse catalog file: %v", err)
	}

	// Build timetable, an interrupt stops the search and keeps the best timetable so far
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	timetabler := genetic.NewGeneticTimetabler(parameters, logger)
	timetable, report, err := timetabler.Build(ctx, catalog)
	if errors.Is(err, context.Canceled) {
		logger.Warn("search interrupted", zap.Uint64("generations", report.Generations))
	} else if err != nil {
		log.Fatalf("an error occurred during timetable construction: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	out := io.Writer(os.Stdout)
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			log.Fatalf("cannot create the output file: %v", err)
		}
		defer file.Close()
		out = file
	}
	if err := writers[output](out, timetable, catalog); err != nil {
		log.Fatalf("an error occurred while writing the output: %v", err)
	}

	fmt.Fprintf(os.Stderr, "State: %v\n", report.State)
	fmt.Fprintf(os.Stderr, "Score: %v\n", report.BestScore)
	fmt.Fprintf(os.Stderr, "Placed: %v/%v\n", report.Placed, report.Target)

	// Verify timetable correctness
	if !timetabler.Verify(timetable, catalog) {
		logger.Sync()
		os.Exit(15)
	}
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	return logger
}
