package engine

import (
	"math/rand"
	"testing"

	"github.com/piwi3910/RoomCraft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRoom builds a bare room with the given door and window counts.
func testRoom(id int, area float64, doors, windows int) *model.Room {
	r := model.NewRoom(id)
	r.Area = area
	for i := 0; i < doors; i++ {
		r.Doors = append(r.Doors, &model.Structure{Kind: model.KindDoor})
	}
	for i := 0; i < windows; i++ {
		r.Windows = append(r.Windows, &model.Structure{Kind: model.KindWindow})
	}
	return r
}

// twoRoomHouse is a small room and a large windowed room joined by a door.
func twoRoomHouse() []*model.Room {
	small := testRoom(1, 100, 1, 0)
	large := testRoom(2, 300, 1, 1)
	model.Connect(small, large)
	return []*model.Room{small, large}
}

func TestFitness_KnownAssignments(t *testing.T) {
	p := NewRoomTypeProblem(twoRoomHouse())

	tests := []struct {
		name       string
		assignment RoomAssignment
		want       float64
	}{
		{"bathroom next to bedroom", RoomAssignment{1: model.Bathroom, 2: model.Bedroom}, 1700},
		{"hall next to kitchen", RoomAssignment{1: model.Hall, 2: model.Kitchen}, -2100},
		{"livingroom and bedroom", RoomAssignment{1: model.Livingroom, 2: model.Bedroom}, 500},
		{"two bedrooms", RoomAssignment{1: model.Bedroom, 2: model.Bedroom}, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Fitness(tt.assignment))
		})
	}
}

func TestFitness_HallWithUnconnectedDoors(t *testing.T) {
	hall := testRoom(1, 100, 3, 0)
	p := NewRoomTypeProblem([]*model.Room{hall})

	// 3 doors, none connected: +600 bonus, +1800 per-door, +300 presence,
	// -600 -800 -400 missing types, -1000 incomplete house with a hall
	assert.Equal(t, -100.0, p.Fitness(RoomAssignment{1: model.Hall}))
}

func TestFitness_IgnoresUnknownNeighbours(t *testing.T) {
	rooms := twoRoomHouse()
	p := NewRoomTypeProblem(rooms[:1])
	// room 2 is outside the problem, so only presence rules apply
	assert.Equal(t, 300.0-800-400, p.Fitness(RoomAssignment{1: model.Bathroom}))
}

func TestRoomTypeProblem_Operators(t *testing.T) {
	rooms := twoRoomHouse()
	p := NewRoomTypeProblem(rooms)
	rng := rand.New(rand.NewSource(9))

	c := p.RandomChromosome(rng)
	require.Len(t, c, 2)
	for id, rt := range c {
		assert.Contains(t, model.RoomTypes, rt, "room %d", id)
	}

	unchanged := p.Mutate(c, 0, rng)
	assert.Equal(t, c, unchanged)

	a := RoomAssignment{1: model.Kitchen, 2: model.Kitchen}
	b := RoomAssignment{1: model.Hall, 2: model.Hall}
	child := p.Crossover(a, b, rng)
	for id, rt := range child {
		assert.True(t, rt == model.Kitchen || rt == model.Hall, "room %d got %s", id, rt)
	}
}

func TestGeneticFindsBestAssignment(t *testing.T) {
	rooms := twoRoomHouse()
	p := NewRoomTypeProblem(rooms)
	cfg := DefaultGeneticConfig()
	cfg.Generations = 300

	result := NewGenetic[RoomAssignment](p, cfg, rand.New(rand.NewSource(1)), nil).Run()

	assert.Equal(t, 1700.0, result.Fitness)
	assert.Equal(t, RoomAssignment{1: model.Bathroom, 2: model.Bedroom}, result.Best)
}

func TestAssignRoomTypes_AppliesResult(t *testing.T) {
	for _, strategy := range []model.Assignment{model.AssignmentGenetic, model.AssignmentGreedy} {
		t.Run(string(strategy), func(t *testing.T) {
			rooms := twoRoomHouse()
			cfg := model.DefaultAppConfig()
			cfg.Assignment = strategy
			cfg.Genetic.Generations = 200

			assignment, fitness := AssignRoomTypes(rooms, cfg, rand.New(rand.NewSource(4)), nil)

			require.Len(t, assignment, 2)
			for _, r := range rooms {
				assert.Equal(t, assignment[r.ID], r.Type)
				assert.NotEqual(t, model.RoomTypeNone, r.Type)
			}
			assert.Equal(t, NewRoomTypeProblem(rooms).Fitness(assignment), fitness)
		})
	}
}

func TestAssignGreedy(t *testing.T) {
	rooms := twoRoomHouse()
	rooms = append(rooms, testRoom(3, 200, 2, 2))

	a := AssignGreedy(rooms, rand.New(rand.NewSource(2)))
	b := AssignGreedy(rooms, rand.New(rand.NewSource(2)))

	require.Len(t, a, 3)
	assert.Equal(t, a, b, "same seed must give the same assignment")
	for id, rt := range a {
		assert.Contains(t, model.RoomTypes, rt, "room %d", id)
	}
	assert.Empty(t, AssignGreedy(nil, rand.New(rand.NewSource(2))))
}

func TestAssignmentCounts(t *testing.T) {
	a := RoomAssignment{1: model.Bedroom, 2: model.Bedroom, 3: model.Kitchen}
	counts := a.Counts()
	assert.Equal(t, 2, counts[model.Bedroom])
	assert.Equal(t, 1, counts[model.Kitchen])
	assert.Equal(t, 0, counts[model.Hall])
}
