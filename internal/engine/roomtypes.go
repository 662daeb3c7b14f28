package engine

import (
	"math/rand"

	"github.com/piwi3910/RoomCraft/internal/model"
)

// RoomAssignment maps room ids to their chosen type.
type RoomAssignment map[int]model.RoomType

// Apply writes the assignment onto the rooms.
func (a RoomAssignment) Apply(rooms []*model.Room) {
	for _, r := range rooms {
		r.Type = a[r.ID]
	}
}

// Counts returns how many rooms got each type.
func (a RoomAssignment) Counts() map[model.RoomType]int {
	counts := make(map[model.RoomType]int, len(model.RoomTypes))
	for _, t := range a {
		counts[t]++
	}
	return counts
}

// crossoverBias is the chance that a child gene comes from the first parent.
const crossoverBias = 0.8

// RoomTypeProblem scores room-type assignments for one house.
type RoomTypeProblem struct {
	rooms   []*model.Room
	byID    map[int]*model.Room
	avgArea float64
}

// NewRoomTypeProblem prepares the fitness context for the rooms.
func NewRoomTypeProblem(rooms []*model.Room) *RoomTypeProblem {
	p := &RoomTypeProblem{rooms: rooms, byID: make(map[int]*model.Room, len(rooms))}
	total := 0.0
	for _, r := range rooms {
		p.byID[r.ID] = r
		total += r.Area
	}
	if len(rooms) > 0 {
		p.avgArea = total / float64(len(rooms))
	}
	return p
}

func randomRoomType(rng *rand.Rand) model.RoomType {
	return model.RoomTypes[rng.Intn(len(model.RoomTypes))]
}

// RandomChromosome assigns every room a uniformly drawn type.
func (p *RoomTypeProblem) RandomChromosome(rng *rand.Rand) RoomAssignment {
	c := make(RoomAssignment, len(p.rooms))
	for _, r := range p.rooms {
		c[r.ID] = randomRoomType(rng)
	}
	return c
}

// Mutate redraws each room's type with probability area.
func (p *RoomTypeProblem) Mutate(c RoomAssignment, area float64, rng *rand.Rand) RoomAssignment {
	out := make(RoomAssignment, len(p.rooms))
	for _, r := range p.rooms {
		out[r.ID] = c[r.ID]
		replacement := randomRoomType(rng)
		if rng.Float64() <= area {
			out[r.ID] = replacement
		}
	}
	return out
}

// Crossover takes each gene from a with probability 0.8, otherwise from b.
func (p *RoomTypeProblem) Crossover(a, b RoomAssignment, rng *rand.Rand) RoomAssignment {
	out := make(RoomAssignment, len(p.rooms))
	for _, r := range p.rooms {
		if rng.Float64() < crossoverBias {
			out[r.ID] = a[r.ID]
		} else {
			out[r.ID] = b[r.ID]
		}
	}
	return out
}

// Fitness applies the adjacency and area heuristics. The weights are
// hand-tuned; higher scores describe more plausible homes.
func (p *RoomTypeProblem) Fitness(c RoomAssignment) float64 {
	fitness := 0.0
	counts := make(map[model.RoomType]int, len(model.RoomTypes))

	for _, room := range p.rooms {
		kind := c[room.ID]
		room.Connected.Each(func(id int) {
			if _, ok := p.byID[id]; !ok {
				return
			}
			fitness += neighbourScore(kind, c[id], room, p.avgArea)
		})
		if kind == model.Hall {
			doors := len(room.Doors)
			if doors == 1 {
				fitness -= 1000
			}
			if doors > room.Connected.Size() {
				fitness += 600
			}
			fitness += 600 * float64(doors)
		}
		counts[kind]++
	}

	maxCount := 0
	maxType := model.RoomTypeNone
	for _, t := range model.RoomTypes {
		if counts[t] > 0 {
			fitness += 300
		}
		if counts[t] > maxCount {
			maxCount = counts[t]
			maxType = t
		}
	}
	if counts[model.Bathroom] == 0 {
		fitness -= 600
	}
	if counts[model.Bedroom] == 0 {
		fitness -= 800
	}
	if counts[model.Kitchen] == 0 {
		fitness -= 400
	}
	if maxType == model.Bedroom {
		fitness += 600
	}
	if counts[model.Hall] > 0 && (counts[model.Bedroom] == 0 || counts[model.Kitchen] == 0 ||
		counts[model.Bathroom] == 0 || counts[model.Livingroom] == 0) {
		fitness -= 1000
	}
	return fitness
}

// neighbourScore is the contribution of one connected neighbour.
func neighbourScore(kind, neighbour model.RoomType, room *model.Room, avgArea float64) float64 {
	score := 0.0
	switch kind {
	case model.Bathroom:
		score -= 800 * float64(len(room.Windows))
		if room.Area < avgArea {
			score += 300
		} else {
			score -= 200
		}
		switch neighbour {
		case model.Bedroom, model.Hall:
			score += 300
		case model.Livingroom, model.Kitchen, model.Bathroom:
			score -= 300
		}
	case model.Kitchen:
		switch neighbour {
		case model.Livingroom:
			score += 400
		case model.Hall:
			score += 100
		default:
			score -= 300
		}
	case model.Bedroom:
		if room.Area > avgArea {
			score += 300
		}
	}
	return score
}
