package geometry

import "math"

// Collides runs the separating-axis test on two convex polygons. Intervals that
// merely touch are not separating, so polygons sharing an edge or a vertex
// collide.
func Collides(a, b Polygon) bool {
	for _, poly := range []Polygon{a, b} {
		for i := range poly {
			edge := poly.At(i + 1).Sub(poly[i])
			axis := Point2D{X: -edge.Y, Y: edge.X}
			if separates(axis, a, b) {
				return false
			}
		}
	}
	return true
}

// CollidesAny reports whether p collides with any of the convex parts.
func CollidesAny(parts []Polygon, p Polygon) bool {
	for _, part := range parts {
		if Collides(part, p) {
			return true
		}
	}
	return false
}

func separates(axis Point2D, a, b Polygon) bool {
	minA, maxA := project(axis, a)
	minB, maxB := project(axis, b)
	return !(maxA >= minB && maxB >= minA)
}

func project(axis Point2D, p Polygon) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range p {
		d := v.X*axis.X + v.Y*axis.Y
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

// Contains reports whether q lies inside or on the boundary of the convex
// polygon, within Epsilon. Works for either winding.
func Contains(convex Polygon, q Point2D) bool {
	sign := 0
	for i := range convex {
		a, b := convex[i], convex.At(i+1)
		cross := triangleArea(a, b, q)
		scale := math.Max(1, math.Hypot(b.X-a.X, b.Y-a.Y))
		if math.Abs(cross)/scale <= Epsilon*1e3 {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// Covered reports whether every vertex of p lies in at least one part.
// Vertices alone do not rule out p bridging a notch of a concave outline;
// pair it with CrossesOutline for that.
func Covered(parts []Polygon, p Polygon) bool {
	for _, v := range p {
		inside := false
		for _, part := range parts {
			if Contains(part, v) {
				inside = true
				break
			}
		}
		if !inside {
			return false
		}
	}
	return true
}

// CrossesOutline reports whether any edge of p properly crosses an edge of
// outline. Touching and collinear overlap do not count.
func CrossesOutline(outline, p Polygon) bool {
	for i := range p {
		a, b := p[i], p.At(i+1)
		for j := range outline {
			c, d := outline[j], outline.At(j+1)
			if properCross(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

func properCross(a, b, c, d Point2D) bool {
	d1, d2 := triangleArea(a, b, c), triangleArea(a, b, d)
	d3, d4 := triangleArea(c, d, a), triangleArea(c, d, b)
	return d1*d2 < 0 && d3*d4 < 0
}
