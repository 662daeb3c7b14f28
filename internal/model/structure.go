package model

import (
	"github.com/google/uuid"
	"github.com/piwi3910/RoomCraft/internal/geometry"
)

// StructureKind tags the rim element a Structure represents.
type StructureKind int

const (
	KindWall StructureKind = iota
	KindDoor
	KindWindow
)

func (k StructureKind) String() string {
	switch k {
	case KindDoor:
		return "Door"
	case KindWindow:
		return "Window"
	default:
		return "Wall"
	}
}

// KindOf maps a rim material to its structure kind.
func KindOf(m Material) (StructureKind, bool) {
	switch m {
	case Wall:
		return KindWall, true
	case Door:
		return KindDoor, true
	case Window:
		return KindWindow, true
	}
	return KindWall, false
}

// Structure is one run of wall, door or window cells along a room rim.
// Coordinates are local to the owning room.
type Structure struct {
	Kind        StructureKind    `json:"kind"`
	Polygon     geometry.Polygon `json:"polygon"`
	Orientation Direction        `json:"orientation"` // points into the room
	InnerMargin geometry.Segment `json:"inner_margin"`
	Blocker     geometry.Polygon `json:"blocker,omitempty"` // doors and windows only
	Asset       string           `json:"asset,omitempty"`
}

// NewStructure creates a structure and derives the blocker for openings.
// thickness is the blocker depth, normally one cell in world units.
func NewStructure(kind StructureKind, poly geometry.Polygon, orientation Direction, margin geometry.Segment, thickness float64) *Structure {
	s := &Structure{
		Kind:        kind,
		Polygon:     poly,
		Orientation: orientation,
		InnerMargin: margin,
	}
	if kind != KindWall {
		s.Blocker = NewBlocker(poly, orientation, thickness)
	}
	return s
}

// Points returns the structure footprint.
func (s *Structure) Points() geometry.Polygon { return s.Polygon }

// NewBlocker builds a strip of the given thickness on the inward side of poly,
// spanning the full extent of poly along that side.
func NewBlocker(poly geometry.Polygon, orientation Direction, thickness float64) geometry.Polygon {
	min, max := poly.BoundingBox()
	switch orientation {
	case Up:
		return geometry.Polygon{
			{X: min.X, Y: min.Y - thickness},
			{X: max.X, Y: min.Y - thickness},
			{X: max.X, Y: min.Y},
			{X: min.X, Y: min.Y},
		}
	case Down:
		return geometry.Polygon{
			{X: min.X, Y: max.Y + thickness},
			{X: min.X, Y: max.Y},
			{X: max.X, Y: max.Y},
			{X: max.X, Y: max.Y + thickness},
		}
	case Left:
		return geometry.Polygon{
			{X: min.X - thickness, Y: min.Y},
			{X: min.X, Y: min.Y},
			{X: min.X, Y: max.Y},
			{X: min.X - thickness, Y: max.Y},
		}
	default:
		return geometry.Polygon{
			{X: max.X + thickness, Y: min.Y},
			{X: max.X, Y: min.Y},
			{X: max.X, Y: max.Y},
			{X: max.X + thickness, Y: max.Y},
		}
	}
}

// Furniture is a placed catalog item inside a room. Coordinates are room-local.
type Furniture struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Polygon     geometry.Polygon `json:"polygon"`
	Orientation Direction        `json:"orientation"`
	Asset       string           `json:"asset"`
	Tall        bool             `json:"tall"`
}

// NewFurniture creates a furniture item with a short unique ID.
func NewFurniture(kind string, poly geometry.Polygon, orientation Direction, asset string, tall bool) *Furniture {
	return &Furniture{
		ID:          uuid.New().String()[:8],
		Type:        kind,
		Polygon:     poly,
		Orientation: orientation,
		Asset:       asset,
		Tall:        tall,
	}
}

// Points returns the furniture footprint.
func (f *Furniture) Points() geometry.Polygon { return f.Polygon }
