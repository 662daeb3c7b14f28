// Package geometry implements the polygon kernel used by the floor-plan
// pipeline: orientation, convex decomposition and separating-axis collision.
package geometry

import "math"

// Epsilon is the tolerance used for containment tests.
const Epsilon = 1e-9

// Point2D represents a 2D coordinate in world units.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p shifted by q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{X: p.X - q.X, Y: p.Y - q.Y}
}

// Polygon is a closed polygon given as an ordered vertex list.
// The polygon is implicitly closed: the last point connects back to the first.
type Polygon []Point2D

// Shape is anything that exposes its footprint as a polygon.
type Shape interface {
	Points() Polygon
}

// Points lets a bare Polygon satisfy Shape.
func (p Polygon) Points() Polygon { return p }

// At returns the vertex at index i, wrapping around in both directions.
func (p Polygon) At(i int) Point2D {
	n := len(p)
	return p[((i%n)+n)%n]
}

// BoundingBox returns the min and max corners of the polygon.
func (p Polygon) BoundingBox() (min, max Point2D) {
	if len(p) == 0 {
		return Point2D{}, Point2D{}
	}
	min, max = p[0], p[0]
	for _, q := range p[1:] {
		min.X = math.Min(min.X, q.X)
		min.Y = math.Min(min.Y, q.Y)
		max.X = math.Max(max.X, q.X)
		max.Y = math.Max(max.Y, q.Y)
	}
	return min, max
}

// Translate shifts all points by dx, dy.
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, q := range p {
		out[i] = Point2D{X: q.X + dx, Y: q.Y + dy}
	}
	return out
}

// Reverse returns a copy of the polygon with the vertex order reversed.
func (p Polygon) Reverse() Polygon {
	out := make(Polygon, len(p))
	for i, q := range p {
		out[len(p)-1-i] = q
	}
	return out
}

// Clone returns an independent copy of the polygon.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Index returns the position of q in the polygon, or -1.
func (p Polygon) Index(q Point2D) int {
	for i, v := range p {
		if v == q {
			return i
		}
	}
	return -1
}

// Equal reports whether both polygons list the same vertices in the same order.
func (p Polygon) Equal(o Polygon) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// SameVertices reports whether both polygons are built from the same vertex set,
// regardless of order and starting point.
func (p Polygon) SameVertices(o Polygon) bool {
	if len(p) != len(o) {
		return false
	}
	for _, v := range p {
		if o.Index(v) < 0 {
			return false
		}
	}
	for _, v := range o {
		if p.Index(v) < 0 {
			return false
		}
	}
	return true
}

// Rect builds the axis-aligned rectangle with top-left corner at origin.
func Rect(origin Point2D, width, height float64) Polygon {
	return Polygon{
		origin,
		{X: origin.X + width, Y: origin.Y},
		{X: origin.X + width, Y: origin.Y + height},
		{X: origin.X, Y: origin.Y + height},
	}
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A Point2D `json:"a"`
	B Point2D `json:"b"`
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y)
}

// Vertical reports whether both endpoints share the same x coordinate.
func (s Segment) Vertical() bool {
	return s.A.X == s.B.X
}

// At returns the point at parameter t, where 0 is A and 1 is B.
func (s Segment) At(t float64) Point2D {
	return Point2D{X: s.A.X + t*(s.B.X-s.A.X), Y: s.A.Y + t*(s.B.Y-s.A.Y)}
}

// RotateQuarter rotates p about origin by turns multiples of 90 degrees,
// using the standard rotation matrix so turn 1 maps (dx, dy) to (-dy, dx).
// Quarter turns are computed exactly, without trigonometry.
func RotateQuarter(origin, p Point2D, turns int) Point2D {
	dx, dy := p.X-origin.X, p.Y-origin.Y
	switch ((turns % 4) + 4) % 4 {
	case 1:
		dx, dy = -dy, dx
	case 2:
		dx, dy = -dx, -dy
	case 3:
		dx, dy = dy, -dx
	}
	return Point2D{X: origin.X + dx, Y: origin.Y + dy}
}

// RotateQuarterAll rotates every vertex of the polygon about origin.
func RotateQuarterAll(origin Point2D, p Polygon, turns int) Polygon {
	out := make(Polygon, len(p))
	for i, q := range p {
		out[i] = RotateQuarter(origin, q, turns)
	}
	return out
}
