package model

import (
	"sort"

	"github.com/piwi3910/RoomCraft/internal/geometry"
	"github.com/zyedidia/generic/mapset"
)

// Room is one enclosed region of the floor plan together with its rim.
// Polygons of the room's structures and furniture are relative to Origin.
type Room struct {
	ID            int              `json:"id"`
	Origin        geometry.Point2D `json:"origin"`
	FarthestPoint geometry.Point2D `json:"farthest_point"`
	Outline       geometry.Polygon `json:"outline"`
	Walls         []*Structure     `json:"walls"`
	Doors         []*Structure     `json:"doors"`
	Windows       []*Structure     `json:"windows"`
	Area          float64          `json:"area"`       // floor area in world units squared
	CellCount     int              `json:"cell_count"` // floor area in schema cells
	Type          RoomType         `json:"type"`
	Furniture     []*Furniture     `json:"furniture"`

	// Connected holds the ids of rooms sharing a door with this one.
	Connected mapset.Set[int] `json:"-"`

	parts []geometry.Polygon
}

// NewRoom creates an empty, untyped room.
func NewRoom(id int) *Room {
	return &Room{
		ID:        id,
		Type:      RoomTypeNone,
		Connected: mapset.New[int](),
	}
}

// Points returns the room outline.
func (r *Room) Points() geometry.Polygon { return r.Outline }

// Structures returns walls, doors and windows in that order.
func (r *Room) Structures() []*Structure {
	out := make([]*Structure, 0, len(r.Walls)+len(r.Doors)+len(r.Windows))
	out = append(out, r.Walls...)
	out = append(out, r.Doors...)
	return append(out, r.Windows...)
}

// AddStructure files the structure under its kind.
func (r *Room) AddStructure(s *Structure) {
	switch s.Kind {
	case KindDoor:
		r.Doors = append(r.Doors, s)
	case KindWindow:
		r.Windows = append(r.Windows, s)
	default:
		r.Walls = append(r.Walls, s)
	}
}

// ConvexParts returns the convex decomposition of the outline, computed on
// first use. The outline is brought to CCW order first.
func (r *Room) ConvexParts() []geometry.Polygon {
	if r.parts != nil || len(r.Outline) < 3 {
		return r.parts
	}
	outline := r.Outline
	if geometry.Orientation(outline) == geometry.CW {
		outline = outline.Reverse()
	}
	r.parts = geometry.Decompose(outline)
	return r.parts
}

// ConnectedIDs returns the connected room ids in ascending order.
func (r *Room) ConnectedIDs() []int {
	ids := make([]int, 0, r.Connected.Size())
	r.Connected.Each(func(id int) {
		ids = append(ids, id)
	})
	sort.Ints(ids)
	return ids
}

// Connect links two rooms in both directions.
func Connect(a, b *Room) {
	a.Connected.Put(b.ID)
	b.Connected.Put(a.ID)
}

// House is the structured model extracted from one floor plan.
type House struct {
	Rooms  []*Room `json:"rooms"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Room looks up a room by id.
func (h *House) Room(id int) *Room {
	for _, r := range h.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// FurnitureCount returns the number of furniture items across all rooms.
func (h *House) FurnitureCount() int {
	n := 0
	for _, r := range h.Rooms {
		n += len(r.Furniture)
	}
	return n
}
