package engine

import (
	"fmt"
	"math/rand"

	"github.com/piwi3910/RoomCraft/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name   string
	Config model.AppConfig
}

// ComparisonResult holds the room typing produced by a single scenario.
type ComparisonResult struct {
	Scenario   ComparisonScenario
	Assignment RoomAssignment
	Fitness    float64
	Counts     map[model.RoomType]int
}

// CompareStrategies runs room typing for each scenario on the same rooms and
// returns the results in scenario order. Room types are restored afterwards,
// so the rooms are left as they were passed in.
func CompareStrategies(scenarios []ComparisonScenario, rooms []*model.Room, rng *rand.Rand) []ComparisonResult {
	saved := make(RoomAssignment, len(rooms))
	for _, r := range rooms {
		saved[r.ID] = r.Type
	}
	defer saved.Apply(rooms)

	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		assignment, fitness := AssignRoomTypes(rooms, scenario.Config, rng, nil)
		results = append(results, ComparisonResult{
			Scenario:   scenario,
			Assignment: assignment,
			Fitness:    fitness,
			Counts:     assignment.Counts(),
		})
	}
	return results
}

// BuildDefaultScenarios generates what-if alternatives around the base config.
func BuildDefaultScenarios(base model.AppConfig) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Config: base},
	}

	alt := base
	if base.Assignment == model.AssignmentGreedy {
		alt.Assignment = model.AssignmentGenetic
		scenarios = append(scenarios, ComparisonScenario{Name: "Genetic Assignment", Config: alt})
	} else {
		alt.Assignment = model.AssignmentGreedy
		scenarios = append(scenarios, ComparisonScenario{Name: "Greedy Assignment", Config: alt})
	}

	if base.Assignment != model.AssignmentGreedy {
		longer := base
		longer.Genetic.Generations = base.Genetic.Generations * 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:   fmt.Sprintf("%d Generations", longer.Genetic.Generations),
			Config: longer,
		})

		// Without mutation the search only recombines the random pools.
		if base.Genetic.MutationRate > 0 {
			noMutation := base
			noMutation.Genetic.MutationRate = 0
			scenarios = append(scenarios, ComparisonScenario{Name: "No Mutation", Config: noMutation})
		}
	}

	return scenarios
}
