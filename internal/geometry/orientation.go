package geometry

// Winding is the vertex order of a polygon.
type Winding int

const (
	CW Winding = iota
	CCW
)

func (w Winding) String() string {
	if w == CCW {
		return "CCW"
	}
	return "CW"
}

// orientationSum accumulates (x_i - x_{i-1}) * (y_i + y_{i-1}) over every edge,
// including the closing edge.
func orientationSum(p Polygon) float64 {
	sum := 0.0
	for i := range p {
		prev := p.At(i - 1)
		sum += (p[i].X - prev.X) * (p[i].Y + prev.Y)
	}
	return sum
}

// Orientation classifies the winding of the polygon. A negative edge sum
// is CCW, anything else (degenerate included) is CW.
func Orientation(p Polygon) Winding {
	if orientationSum(p) < 0 {
		return CCW
	}
	return CW
}

// IsCCW is shorthand for Orientation(p) == CCW.
func IsCCW(p Polygon) bool {
	return Orientation(p) == CCW
}

// triangleArea is twice the signed area of abc. Positive when a, b, c turn
// left under the same convention Orientation calls CCW.
func triangleArea(a, b, c Point2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

func isLeftOn(a, b, c Point2D) bool  { return triangleArea(a, b, c) >= 0 }
func isRight(a, b, c Point2D) bool   { return triangleArea(a, b, c) < 0 }
func isRightOn(a, b, c Point2D) bool { return triangleArea(a, b, c) <= 0 }

// IsReflex reports whether vertex i of a CCW polygon has an interior angle
// above 180 degrees.
func (p Polygon) IsReflex(i int) bool {
	return isRight(p.At(i-1), p.At(i), p.At(i+1))
}

// IsConvex reports whether the CCW polygon has no reflex vertex.
func IsConvex(p Polygon) bool {
	for i := range p {
		if p.IsReflex(i) {
			return false
		}
	}
	return true
}
