package catalog

import (
	"math/rand"

	"github.com/piwi3910/RoomCraft/internal/model"
)

// Quota counts the items of each type placed in the room being furnished.
type Quota map[string]int

// NewQuota returns an empty quota.
func NewQuota() Quota { return Quota{} }

// Placed records one more item of the given type.
func (q Quota) Placed(kind string) { q[kind]++ }

// Weight returns the draw weight of an entry given what is already placed:
// the likeness for unlimited entries, likeness times the remaining allowance
// otherwise.
func (e Entry) Weight(q Quota) float64 {
	if !e.Limit.Bounded {
		return e.Likeness
	}
	remaining := e.Limit.Max - q[e.Type]
	if remaining <= 0 {
		return 0
	}
	return e.Likeness * float64(remaining)
}

// Draw picks one entry for the room type with probability proportional to its
// weight. It reports false when the room type has no entries or every weight
// is zero.
func (c *Catalog) Draw(rt model.RoomType, q Quota, rng *rand.Rand) (Entry, bool) {
	entries := c.rooms[rt]
	total := 0.0
	for _, e := range entries {
		total += e.Weight(q)
	}
	if total <= 0 {
		return Entry{}, false
	}
	r := rng.Float64() * total
	var last Entry
	for _, e := range entries {
		w := e.Weight(q)
		if w <= 0 {
			continue
		}
		last = e
		if r < w {
			return e, true
		}
		r -= w
	}
	// rounding left r just above the last bucket
	return last, true
}
