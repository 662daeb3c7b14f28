package engine

import (
	"math/rand"

	"github.com/piwi3910/RoomCraft/internal/model"
)

// AssignGreedy types rooms one at a time in id order. Each room draws a type
// from base weights shifted by its doors, windows, size, the types already
// given to connected rooms and the types already used in the house. Every
// weight is floored at 1 so any type stays possible.
func AssignGreedy(rooms []*model.Room, rng *rand.Rand) RoomAssignment {
	out := make(RoomAssignment, len(rooms))
	if len(rooms) == 0 {
		return out
	}
	avg := 0.0
	for _, r := range rooms {
		avg += r.Area
	}
	avg /= float64(len(rooms))

	used := make(map[model.RoomType]bool)
	for _, room := range rooms {
		w := map[model.RoomType]float64{
			model.Kitchen:    200,
			model.Bathroom:   300,
			model.Livingroom: 200,
			model.Hall:       100,
			model.Bedroom:    400,
		}
		windows, doors := float64(len(room.Windows)), float64(len(room.Doors))
		w[model.Hall] += 200*doors - 200*windows
		w[model.Bathroom] += 800 - 500*windows

		room.Connected.Each(func(id int) {
			switch out[id] {
			case model.Bathroom:
				w[model.Bedroom] += 300
				w[model.Hall] += 300
				w[model.Kitchen] -= 200
				w[model.Bathroom] = 0
				w[model.Livingroom] -= 200
			case model.Kitchen:
				w[model.Bathroom] -= 300
				w[model.Livingroom] += 300
				w[model.Bedroom] -= 200
				w[model.Kitchen] -= 300
			}
		})

		if room.Area > avg {
			w[model.Bathroom] -= 200
			w[model.Livingroom] += 300
		}
		if used[model.Kitchen] {
			w[model.Kitchen] -= 300
		}
		if used[model.Bathroom] {
			w[model.Bathroom] -= 100
		}
		if used[model.Livingroom] {
			w[model.Livingroom] -= 300
		}

		total := 0.0
		for _, t := range model.RoomTypes {
			if w[t] < 1 {
				w[t] = 1
			}
			total += w[t]
		}
		r := rng.Float64() * total
		chosen := model.RoomTypes[len(model.RoomTypes)-1]
		for _, t := range model.RoomTypes {
			if r < w[t] {
				chosen = t
				break
			}
			r -= w[t]
		}
		out[room.ID] = chosen
		used[chosen] = true
	}
	return out
}
