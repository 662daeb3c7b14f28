package export

import (
	"fmt"

	"github.com/piwi3910/RoomCraft/internal/geometry"
	"github.com/piwi3910/RoomCraft/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names, one per kind of outline.
const (
	LayerRooms     = "ROOMS"
	LayerWalls     = "WALLS"
	LayerDoors     = "DOORS"
	LayerWindows   = "WINDOWS"
	LayerFurniture = "FURNITURE"
)

var dxfLayers = []struct {
	name  string
	color color.ColorNumber
}{
	{LayerRooms, color.Cyan},
	{LayerWalls, dxf.DefaultColor},
	{LayerDoors, color.Red},
	{LayerWindows, color.Blue},
	{LayerFurniture, color.Green},
}

// ExportDXF writes the furnished house as a DXF drawing. Every polygon is a
// closed loop of LINE entities in world units, with y flipped so the plan
// reads the same way up as the source image.
func ExportDXF(path string, house *model.House) error {
	if house == nil || len(house.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	d := dxf.NewDrawing()
	for _, l := range dxfLayers {
		if _, err := d.AddLayer(l.name, l.color, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	w := dxfWriter{d: d, height: house.Height}
	for _, room := range house.Rooms {
		w.loops(LayerRooms, room.Origin, room.Outline)
		for _, s := range room.Walls {
			w.loops(LayerWalls, room.Origin, s.Polygon)
		}
		for _, s := range room.Doors {
			w.loops(LayerDoors, room.Origin, s.Polygon)
		}
		for _, s := range room.Windows {
			w.loops(LayerWindows, room.Origin, s.Polygon)
		}
		for _, f := range room.Furniture {
			w.loops(LayerFurniture, room.Origin, f.Polygon)
		}
	}
	if w.err != nil {
		return fmt.Errorf("failed to draw DXF entities: %w", w.err)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}

// dxfWriter draws polygons and keeps the first error.
type dxfWriter struct {
	d      *drawing.Drawing
	height float64
	err    error
}

func (w *dxfWriter) loops(layer string, origin geometry.Point2D, polys ...geometry.Polygon) {
	if w.err != nil {
		return
	}
	if w.err = w.d.ChangeLayer(layer); w.err != nil {
		return
	}
	for _, p := range polys {
		for i := range p {
			a, b := p.At(i).Add(origin), p.At(i+1).Add(origin)
			if _, w.err = w.d.Line(a.X, w.height-a.Y, 0, b.X, w.height-b.Y, 0); w.err != nil {
				return
			}
		}
	}
}
