package engine

import (
	"io"
	"log"
	"math"
	"math/rand"

	"github.com/piwi3910/RoomCraft/internal/catalog"
	"github.com/piwi3910/RoomCraft/internal/geometry"
	"github.com/piwi3910/RoomCraft/internal/model"
)

// Gaps in world units between a footprint and the structure it is anchored to.
const (
	nearGap = 1.0
	farGap  = 2.0
)

// Furnisher places catalog furniture along room structures.
type Furnisher struct {
	Catalog *catalog.Catalog
	// Scale is the world size of one schema cell; catalog sizes are in cells.
	Scale  float64
	rng    *rand.Rand
	logger *log.Logger
}

// NewFurnisher creates a furnisher. A nil logger discards output.
func NewFurnisher(cat *catalog.Catalog, scale float64, rng *rand.Rand, logger *log.Logger) *Furnisher {
	if scale <= 0 {
		scale = model.DefaultScale
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Furnisher{Catalog: cat, Scale: scale, rng: rng, logger: logger}
}

// FurnishHouse furnishes every room independently.
func (f *Furnisher) FurnishHouse(h *model.House) {
	for _, room := range h.Rooms {
		f.FurnishRoom(room)
	}
	f.logger.Printf("Placed %d furniture items in %d rooms", h.FurnitureCount(), len(h.Rooms))
}

// FurnishRoom assigns door and window assets, then tries to place furniture
// along every window and afterwards along every wall. Quotas start fresh for
// each room.
func (f *Furnisher) FurnishRoom(room *model.Room) {
	quota := catalog.NewQuota()
	for _, door := range room.Doors {
		door.Asset = f.Catalog.DoorAsset
	}
	placed := 0
	for _, window := range room.Windows {
		window.Asset = f.Catalog.WindowAsset
		placed += f.PlaceNearStructure(window, room, quota)
	}
	for _, wall := range room.Walls {
		placed += f.PlaceNearStructure(wall, room, quota)
	}
	f.logger.Printf("Room %d (%s): placed %d items", room.ID, room.Type, placed)
}

// PlaceNearStructure samples random anchor points on the structure's inner
// margin, two attempts per cell of margin length, and keeps every footprint
// that passes CanPlaceFurniture. It returns the number of items placed.
func (f *Furnisher) PlaceNearStructure(s *model.Structure, room *model.Room, quota catalog.Quota) int {
	m := s.InnerMargin
	retries := int(math.Abs(math.Trunc((m.B.Y-m.A.Y+m.B.X-m.A.X)/f.Scale))) * 2
	placed := 0
	for i := 0; i < retries; i++ {
		var point geometry.Point2D
		if m.Vertical() {
			point = geometry.Point2D{X: m.A.X, Y: f.rng.Float64()*(m.B.Y-m.A.Y) + m.A.Y}
		} else {
			point = geometry.Point2D{X: f.rng.Float64()*(m.B.X-m.A.X) + m.A.X, Y: m.B.Y}
		}
		if f.tryPlace(point, room, s.Orientation, quota) {
			placed++
		}
	}
	return placed
}

func (f *Furnisher) tryPlace(point geometry.Point2D, room *model.Room, orientation model.Direction, quota catalog.Quota) bool {
	entry, ok := f.Catalog.Draw(room.Type, quota, f.rng)
	if !ok {
		return false
	}
	poly := Footprint(point, entry.Width*f.Scale, entry.Height*f.Scale, orientation, f.Scale)
	item := model.NewFurniture(entry.Type, poly, orientation, entry.Asset, entry.Tall)
	if !CanPlaceFurniture(item, room) {
		return false
	}
	quota.Placed(entry.Type)
	room.Furniture = append(room.Furniture, item)
	return true
}

// Footprint builds a width x height rectangle anchored at point and turned so
// it extends into the room from a structure facing orientation. The small
// offsets keep it clear of the structure it leans on; a structure facing
// down is anchored on its outer face and is cleared by a full cell.
func Footprint(point geometry.Point2D, width, height float64, orientation model.Direction, scale float64) geometry.Polygon {
	rect := geometry.Rect(point, width, height)
	switch orientation {
	case model.Down:
		return rect.Translate(0, scale+farGap)
	case model.Left:
		return geometry.RotateQuarterAll(point, rect, 1).Translate(-nearGap, 0)
	case model.Up:
		return geometry.RotateQuarterAll(point, rect, 2).Translate(0, -nearGap)
	default:
		return geometry.RotateQuarterAll(point, rect, 3).Translate(farGap, 0)
	}
}

// CanPlaceFurniture reports whether item fits in room: it must not touch any
// wall, window, door or door blocker, nor a window blocker when tall, nor
// any furniture already placed, and it must lie within the room's convex
// parts without bridging a notch of the outline.
func CanPlaceFurniture(item *model.Furniture, room *model.Room) bool {
	poly := item.Polygon
	for _, wall := range room.Walls {
		if geometry.Collides(wall.Polygon, poly) {
			return false
		}
	}
	for _, window := range room.Windows {
		if geometry.Collides(window.Polygon, poly) {
			return false
		}
		if item.Tall && geometry.Collides(window.Blocker, poly) {
			return false
		}
	}
	for _, door := range room.Doors {
		if geometry.Collides(door.Polygon, poly) || geometry.Collides(door.Blocker, poly) {
			return false
		}
	}
	for _, other := range room.Furniture {
		if geometry.Collides(other.Polygon, poly) {
			return false
		}
	}
	return geometry.Covered(room.ConvexParts(), poly) && !geometry.CrossesOutline(room.Outline, poly)
}
