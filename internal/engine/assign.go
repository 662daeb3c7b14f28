package engine

import (
	"log"
	"math/rand"

	"github.com/piwi3910/RoomCraft/internal/model"
)

// AssignRoomTypes chooses a type for every room using the strategy selected
// in cfg, writes it onto the rooms and returns the assignment together with
// its fitness under the genetic scoring.
func AssignRoomTypes(rooms []*model.Room, cfg model.AppConfig, rng *rand.Rand, logger *log.Logger) (RoomAssignment, float64) {
	problem := NewRoomTypeProblem(rooms)
	var assignment RoomAssignment
	if cfg.Assignment == model.AssignmentGreedy {
		assignment = AssignGreedy(rooms, rng)
	} else {
		result := NewGenetic[RoomAssignment](problem, GeneticConfigFrom(cfg.Genetic), rng, logger).Run()
		assignment = result.Best
	}
	assignment.Apply(rooms)
	return assignment, problem.Fitness(assignment)
}
