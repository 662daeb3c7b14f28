package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/piwi3910/RoomCraft/internal/engine"
	"github.com/piwi3910/RoomCraft/internal/export"
	"github.com/piwi3910/RoomCraft/internal/extract"
	"github.com/piwi3910/RoomCraft/internal/model"
	"github.com/piwi3910/RoomCraft/internal/project"
)

type furnishOptions struct {
	plan       string
	configPath string
	outDir     string
	seed       int64
	compare    bool
	verbose    bool
}

func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "roomcraft: ", 0)
}

func runInit(dir string) error {
	written, err := project.InitWorkspace(dir)
	if err != nil {
		return err
	}
	if len(written) == 0 {
		fmt.Println("Workspace already initialised, nothing written.")
		return nil
	}
	for _, path := range written {
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func runExtract(plan string, scale float64) error {
	schema, err := extract.LoadSchema(plan)
	if err != nil {
		return fmt.Errorf("loading plan: %w", err)
	}
	house, err := extract.NewExtractor(scale, nil).Extract(schema)
	if err != nil {
		return err
	}
	engine.SetConnectedRooms(house.Rooms)
	printHouse(house)
	return nil
}

func runFurnish(opts furnishOptions) error {
	logger := newLogger(opts.verbose)

	cfg, err := project.LoadAppConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cat, err := project.LoadCatalog(
		project.ResolvePath(opts.configPath, cfg.Catalog.Furniture),
		project.ResolvePath(opts.configPath, cfg.Catalog.Rooms),
	)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewSource(opts.seed))
	}

	pipeline := engine.NewPipeline(cfg, cat, rng, logger)
	result, err := pipeline.RunFile(opts.plan)
	if err != nil {
		return err
	}
	printHouse(result.House)
	fmt.Printf("\nFitness: %.0f  Furniture: %d\n", result.Fitness, result.House.FurnitureCount())

	if opts.compare {
		if rng == nil {
			rng = engine.NewSystemRand()
		}
		results := engine.CompareStrategies(engine.BuildDefaultScenarios(pipeline.Config), result.House.Rooms, rng)
		fmt.Println()
		printComparison(results)
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = project.ResolvePath(opts.configPath, pipeline.Config.Output.Dir)
	}
	return writeOutputs(outDir, pipeline.Config.Output, result.House)
}

// writeOutputs renders every enabled artifact into dir.
func writeOutputs(dir string, out model.OutputSettings, house *model.House) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outputs := []struct {
		enabled bool
		name    string
		write   func(string, *model.House) error
	}{
		{out.PDF, "plan.pdf", export.ExportPDF},
		{out.Cards, "rooms.pdf", export.ExportRoomCards},
		{out.DXF, "plan.dxf", export.ExportDXF},
		{out.XLSX, "schedule.xlsx", export.ExportSchedule},
		{out.Report, "report.json", project.SaveReport},
	}
	for _, o := range outputs {
		if !o.enabled {
			continue
		}
		path := filepath.Join(dir, o.name)
		if err := o.write(path, house); err != nil {
			return fmt.Errorf("writing %s: %w", o.name, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
