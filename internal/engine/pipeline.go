package engine

import (
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/piwi3910/RoomCraft/internal/catalog"
	"github.com/piwi3910/RoomCraft/internal/extract"
	"github.com/piwi3910/RoomCraft/internal/model"
)

// Pipeline runs the full floor plan to furnished house sequence:
// extraction, connectivity, room typing and furnishing.
type Pipeline struct {
	Config  model.AppConfig
	Catalog *catalog.Catalog
	rng     *rand.Rand
	logger  *log.Logger
}

// Result is the outcome of one pipeline run.
type Result struct {
	House      *model.House
	Assignment RoomAssignment
	Fitness    float64
}

// NewPipeline creates a pipeline. A nil rng uses system randomness and a nil
// logger discards output.
func NewPipeline(cfg model.AppConfig, cat *catalog.Catalog, rng *rand.Rand, logger *log.Logger) *Pipeline {
	cfg.Normalize()
	if rng == nil {
		rng = NewSystemRand()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Pipeline{Config: cfg, Catalog: cat, rng: rng, logger: logger}
}

// Run extracts and furnishes the house described by schema.
func (p *Pipeline) Run(schema *model.Schema) (Result, error) {
	house, err := extract.NewExtractor(p.Config.Scale, p.logger).Extract(schema)
	if err != nil {
		return Result{}, err
	}
	return p.furnish(house), nil
}

// RunFile loads a floor plan image and runs it.
func (p *Pipeline) RunFile(path string) (Result, error) {
	schema, err := extract.LoadSchema(path)
	if err != nil {
		return Result{}, fmt.Errorf("loading plan: %w", err)
	}
	return p.Run(schema)
}

func (p *Pipeline) furnish(house *model.House) Result {
	SetConnectedRooms(house.Rooms)
	assignment, fitness := AssignRoomTypes(house.Rooms, p.Config, p.rng, p.logger)
	p.logger.Printf("Room types assigned (%s), fitness %.0f", p.Config.Assignment, fitness)
	NewFurnisher(p.Catalog, p.Config.Scale, p.rng, p.logger).FurnishHouse(house)
	return Result{House: house, Assignment: assignment, Fitness: fitness}
}
