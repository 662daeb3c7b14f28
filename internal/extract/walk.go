package extract

import (
	"fmt"

	"github.com/piwi3910/RoomCraft/internal/geometry"
	"github.com/piwi3910/RoomCraft/internal/model"
)

// walker traces the rim of one room grid.
type walker struct {
	grid   *model.Schema
	origin cell // minimum structure cell, maps to local (0, 0)
	scale  float64
	room   *model.Room

	// current run of equal material
	runStart cell
	runMat   model.Material
	runLen   int
}

func (w *walker) material(c cell) (model.Material, bool) {
	v, ok := w.grid.Get(c.x, c.y)
	return v, ok && v.IsStructure()
}

func (w *walker) startCorner() (cell, bool) {
	for y := 0; y < w.grid.Height(); y++ {
		for x := 0; x < w.grid.Width(); x++ {
			if _, ok := w.material(cell{x, y}); ok {
				return cell{x, y}, true
			}
		}
	}
	return cell{}, false
}

func (w *walker) local(c cell) geometry.Point2D {
	return geometry.Point2D{
		X: float64(c.x-w.origin.x) * w.scale,
		Y: float64(c.y-w.origin.y) * w.scale,
	}
}

func (w *walker) beginRun(c cell) {
	w.runStart = c
	w.runMat, _ = w.material(c)
	w.runLen = 1
}

// walk starts at the first rim cell in row-major order, which is always a
// top-left corner, and heads down the left side. It keeps its heading while
// the next cell is rim, records a turn point and emits the open run when it
// is blocked, then turns to the first perpendicular rim cell. It stops on
// returning to the start cell.
func (w *walker) walk() error {
	start, ok := w.startCorner()
	if !ok {
		return fmt.Errorf("%w: no start corner", ErrBadSchema)
	}

	w.room.Outline = geometry.Polygon{w.local(start)}
	dir := model.Down
	cur := start
	w.beginRun(cur)

	budget := 4*w.grid.Width()*w.grid.Height() + 4
	for steps := 0; ; steps++ {
		if steps > budget {
			return fmt.Errorf("%w: rim walk does not close", ErrBadSchema)
		}

		dx, dy := dir.Step()
		next := cell{cur.x + dx, cur.y + dy}
		if m, ok := w.material(next); ok {
			cur = next
			if m == w.runMat {
				w.runLen++
			} else {
				w.emit(dir)
				w.beginRun(cur)
			}
			if cur == start {
				w.emit(dir)
				return nil
			}
			continue
		}

		w.room.Outline = append(w.room.Outline, w.local(cur))
		w.emit(dir)

		turned := false
		for _, nd := range dir.Perpendicular() {
			dx, dy := nd.Step()
			next := cell{cur.x + dx, cur.y + dy}
			if _, ok := w.material(next); ok {
				dir, cur, turned = nd, next, true
				break
			}
		}
		if !turned {
			return fmt.Errorf("%w: rim walk dead-ends at (%d,%d)", ErrBadSchema, cur.x, cur.y)
		}
		if cur == start {
			return nil
		}
		w.beginRun(cur)
	}
}

// emit turns the open run into a structure on the room.
func (w *walker) emit(dir model.Direction) {
	kind, ok := model.KindOf(w.runMat)
	if !ok || w.runLen == 0 {
		return
	}
	poly, orientation, margin := runGeometry(w.runStart.x-w.origin.x, w.runStart.y-w.origin.y, w.runLen, dir, w.scale)
	w.room.AddStructure(model.NewStructure(kind, poly, orientation, margin, w.scale))
	w.runLen = 0
}

// runGeometry builds the one-cell-thick strip covering n cells starting at
// the local cell (x, y) and heading in dir, plus the direction that faces the
// room and the margin used to anchor furniture.
func runGeometry(x, y, n int, dir model.Direction, f float64) (geometry.Polygon, model.Direction, geometry.Segment) {
	fx, fy, fn := float64(x)*f, float64(y)*f, float64(n)*f
	switch dir {
	case model.Down:
		// left side, room to the right
		p := geometry.Polygon{{X: fx, Y: fy}, {X: fx + f, Y: fy}, {X: fx + f, Y: fy + fn}, {X: fx, Y: fy + fn}}
		return p, model.Right, geometry.Segment{A: p[1], B: p[2]}
	case model.Right:
		// bottom side, room above
		p := geometry.Polygon{{X: fx, Y: fy}, {X: fx + fn, Y: fy}, {X: fx + fn, Y: fy + f}, {X: fx, Y: fy + f}}
		return p, model.Up, geometry.Segment{A: p[0], B: p[1]}
	case model.Up:
		// right side, room to the left
		p := geometry.Polygon{{X: fx + f, Y: fy + f}, {X: fx, Y: fy + f}, {X: fx, Y: fy + f - fn}, {X: fx + f, Y: fy + f - fn}}
		return p, model.Left, geometry.Segment{A: p[1], B: p[2]}
	default:
		// top side, room below; the margin is the outer face and placement
		// compensates with a one-cell offset
		p := geometry.Polygon{{X: fx + f, Y: fy}, {X: fx + f - fn, Y: fy}, {X: fx + f - fn, Y: fy + f}, {X: fx + f, Y: fy + f}}
		return p, model.Down, geometry.Segment{A: p[1], B: p[0]}
	}
}
