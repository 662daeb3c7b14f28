// Package extract turns a material schema into a House: it labels rooms by
// flood fill, pulls each room's rim into a private grid and walks that rim to
// derive walls, doors, windows and the room outline.
package extract

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/piwi3910/RoomCraft/internal/geometry"
	"github.com/piwi3910/RoomCraft/internal/model"
)

// ErrBadSchema marks a floor plan that cannot be turned into rooms.
var ErrBadSchema = errors.New("extract: invalid house schema")

// Extractor converts schemas into houses.
type Extractor struct {
	// Scale is the world size of one schema cell.
	Scale  float64
	logger *log.Logger
}

// NewExtractor creates an extractor. A nil logger discards output.
func NewExtractor(scale float64, logger *log.Logger) *Extractor {
	if scale <= 0 {
		scale = model.DefaultScale
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Extractor{Scale: scale, logger: logger}
}

type cell struct {
	x, y int
}

// Extract labels the outdoor area from the top-left cell, then turns every
// remaining enclosed blank region into a Room. The input schema is not
// modified. Rooms are numbered from 1 in row-major discovery order.
func (e *Extractor) Extract(schema *model.Schema) (*model.House, error) {
	work := schema.Clone()

	e.logger.Printf("Marking the outdoor area of a %dx%d schema", schema.Width(), schema.Height())
	if v, ok := work.Get(0, 0); !ok || v != model.Blank {
		return nil, fmt.Errorf("%w: outdoor seed (0,0) is not blank", ErrBadSchema)
	}
	floodFill(work, nil, cell{0, 0})

	house := &model.House{
		Width:  float64(schema.Width()) * e.Scale,
		Height: float64(schema.Height()) * e.Scale,
	}
	id := 1
	for y := 0; y < work.Height(); y++ {
		for x := 0; x < work.Width(); x++ {
			if v, _ := work.Get(x, y); v != model.Blank {
				continue
			}
			grid := model.NewGrid(schema.Width(), schema.Height(), model.Blank)
			cells := floodFill(work, grid, cell{x, y})
			borderRoom(grid, schema)

			room, err := e.buildRoom(id, grid, cells)
			if err != nil {
				return nil, err
			}
			e.logger.Printf("Room %d: %d cells, %d walls, %d doors, %d windows",
				room.ID, room.CellCount, len(room.Walls), len(room.Doors), len(room.Windows))
			house.Rooms = append(house.Rooms, room)
			id++
		}
	}
	e.logger.Printf("Extracted %d rooms", len(house.Rooms))
	return house, nil
}

// ExtractImage decodes a floor plan and extracts it.
func (e *Extractor) ExtractImage(r io.Reader) (*model.House, error) {
	schema, err := DecodeSchema(r)
	if err != nil {
		return nil, err
	}
	return e.Extract(schema)
}

// floodFill marks every blank cell 4-connected to seed in work and, when
// room is non-nil, in room too. It returns the number of cells marked.
func floodFill(work, room *model.Schema, seed cell) int {
	count := 0
	stack := []cell{seed}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v, ok := work.Get(c.x, c.y); !ok || v != model.Blank {
			continue
		}
		work.Set(c.x, c.y, model.Marked)
		if room != nil {
			room.Set(c.x, c.y, model.Marked)
		}
		count++
		stack = append(stack,
			cell{c.x - 1, c.y}, cell{c.x + 1, c.y},
			cell{c.x, c.y - 1}, cell{c.x, c.y + 1})
	}
	return count
}

// borderRoom copies into room the original material of every blank cell
// that touches a marked cell, diagonals included.
func borderRoom(room, schema *model.Schema) {
	for y := 0; y < room.Height(); y++ {
		for x := 0; x < room.Width(); x++ {
			if v, _ := room.Get(x, y); v != model.Blank || !touchesMarked(room, x, y) {
				continue
			}
			m, _ := schema.Get(x, y)
			room.Set(x, y, m)
		}
	}
}

func touchesMarked(g *model.Schema, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if v, ok := g.Get(x+dx, y+dy); ok && v == model.Marked {
				return true
			}
		}
	}
	return false
}

// structureBounds returns the min and max structure cells of the room grid.
func structureBounds(g *model.Schema) (min, max cell, ok bool) {
	min = cell{g.Width(), g.Height()}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if v, _ := g.Get(x, y); !v.IsStructure() {
				continue
			}
			ok = true
			if x < min.x {
				min.x = x
			}
			if y < min.y {
				min.y = y
			}
			if x > max.x {
				max.x = x
			}
			if y > max.y {
				max.y = y
			}
		}
	}
	return min, max, ok
}

func (e *Extractor) buildRoom(id int, grid *model.Schema, cells int) (*model.Room, error) {
	min, max, ok := structureBounds(grid)
	if !ok {
		return nil, fmt.Errorf("%w: room %d has no rim", ErrBadSchema, id)
	}
	room := model.NewRoom(id)
	room.CellCount = cells
	room.Area = float64(cells) * e.Scale * e.Scale
	room.Origin = geometry.Point2D{X: float64(min.x) * e.Scale, Y: float64(min.y) * e.Scale}
	room.FarthestPoint = geometry.Point2D{X: float64(max.x) * e.Scale, Y: float64(max.y) * e.Scale}

	w := &walker{grid: grid, origin: min, scale: e.Scale, room: room}
	if err := w.walk(); err != nil {
		return nil, fmt.Errorf("room %d: %w", id, err)
	}
	return room, nil
}
