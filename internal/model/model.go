package model

import (
	"fmt"
	"strings"
)

// Material classifies one cell of a floor-plan schema.
type Material int

const (
	Blank  Material = iota // Floor or outdoor space
	Wall                   // Solid wall
	Door                   // Door opening
	Window                 // Window opening
	Marked                 // Transient flood-fill label
)

func (m Material) String() string {
	switch m {
	case Wall:
		return "Wall"
	case Door:
		return "Door"
	case Window:
		return "Window"
	case Marked:
		return "Marked"
	default:
		return "Blank"
	}
}

// IsStructure reports whether the material belongs to a room rim.
func (m Material) IsStructure() bool {
	return m == Wall || m == Door || m == Window
}

// Direction is one of the four cardinal directions in image space,
// where x grows to the right and y grows downward.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Up"
	}
}

// Step returns the grid offset of one move in this direction.
func (d Direction) Step() (dx, dy int) {
	switch d {
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, -1
	}
}

// Perpendicular returns the two directions tried, in order, when a walk
// heading in d is blocked.
func (d Direction) Perpendicular() [2]Direction {
	if d == Up || d == Down {
		return [2]Direction{Left, Right}
	}
	return [2]Direction{Up, Down}
}

// RoomType is the semantic label assigned to a room.
type RoomType int

const (
	RoomTypeNone RoomType = iota
	Kitchen
	Bedroom
	Bathroom
	Hall
	Livingroom
)

// RoomTypes lists every assignable room type in canonical order.
var RoomTypes = []RoomType{Kitchen, Bedroom, Bathroom, Hall, Livingroom}

// String returns the catalog name of the room type.
func (t RoomType) String() string {
	switch t {
	case Kitchen:
		return "kitchen"
	case Bedroom:
		return "bedroom"
	case Bathroom:
		return "bathroom"
	case Hall:
		return "hall"
	case Livingroom:
		return "livingroom"
	default:
		return "none"
	}
}

// ParseRoomType maps a catalog room name to its RoomType.
func ParseRoomType(name string) (RoomType, error) {
	for _, t := range RoomTypes {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}
	return RoomTypeNone, fmt.Errorf("unknown room type %q", name)
}

// MarshalText encodes the room type by its catalog name.
func (t RoomType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a catalog name; "none" maps to RoomTypeNone.
func (t *RoomType) UnmarshalText(text []byte) error {
	if strings.EqualFold(string(text), "none") || len(text) == 0 {
		*t = RoomTypeNone
		return nil
	}
	parsed, err := ParseRoomType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
