package geometry

import "fmt"

// cut is a diagonal between two vertices of the polygon being decomposed.
type cut struct {
	from, to Point2D
}

// exhaustiveReflexLimit is the largest reflex vertex count solved by the
// exhaustive search. Busier outlines use greedyCuts.
const exhaustiveReflexLimit = 4

// Decompose splits a simple CCW polygon into convex parts with a small number
// of cuts. Up to exhaustiveReflexLimit reflex vertices, every reflex vertex is
// tried against every vertex it can see, both sub-polygons are solved
// recursively and the candidate with the fewest cuts wins (the first one found
// on ties). Larger outlines are cut greedily, which keeps the work polynomial.
//
// A polygon without reflex vertices is returned unchanged as a single part.
// Polygons with fewer than three vertices violate the caller contract.
func Decompose(p Polygon) []Polygon {
	var cuts []cut
	if reflexCount(p) <= exhaustiveReflexLimit {
		cuts = cutEdges(p, len(p), make(map[string][]cut))
	} else {
		cuts = greedyCuts(p)
	}
	if len(cuts) == 0 {
		return []Polygon{p.Clone()}
	}
	return slicePolygon(p, cuts)
}

func reflexCount(p Polygon) int {
	n := 0
	for i := range p {
		if p.IsReflex(i) {
			n++
		}
	}
	return n
}

// cutEdges returns the diagonals that split p into convex pieces. depth bounds
// the recursion; every level works on a strictly smaller polygon, so a depth
// equal to the vertex count is never reached on valid input. Sub-polygons
// reached through different cut orders are solved once via memo.
func cutEdges(p Polygon, depth int, memo map[string][]cut) []cut {
	if depth <= 0 || len(p) < 4 {
		return nil
	}
	key := fmt.Sprint([]Point2D(p))
	if cuts, ok := memo[key]; ok {
		return cuts
	}
	var best []cut
	found := false
	for i := range p {
		if !p.IsReflex(i) {
			continue
		}
		for j := range p {
			if !canSee(p, i, j) {
				continue
			}
			left := cutEdges(subPolygon(p, i, j), depth-1, memo)
			right := cutEdges(subPolygon(p, j, i), depth-1, memo)
			if !found || len(left)+len(right) < len(best)-1 {
				combined := make([]cut, 0, len(left)+len(right)+1)
				combined = append(combined, left...)
				combined = append(combined, right...)
				best = append(combined, cut{from: p[i], to: p[j]})
				found = true
			}
		}
	}
	memo[key] = best
	return best
}

// greedyCuts splits at the first reflex vertex along the visible diagonal that
// leaves the fewest reflex vertices in the two pieces, then recurses on both.
// Each level works on strictly smaller polygons.
func greedyCuts(p Polygon) []cut {
	if len(p) < 4 {
		return nil
	}
	for i := range p {
		if !p.IsReflex(i) {
			continue
		}
		bestJ, bestScore := -1, 0
		for j := range p {
			if !canSee(p, i, j) {
				continue
			}
			score := reflexCount(subPolygon(p, i, j)) + reflexCount(subPolygon(p, j, i))
			if bestJ < 0 || score < bestScore {
				bestJ, bestScore = j, score
			}
		}
		if bestJ < 0 {
			return nil
		}
		cuts := greedyCuts(subPolygon(p, i, bestJ))
		cuts = append(cuts, greedyCuts(subPolygon(p, bestJ, i))...)
		return append(cuts, cut{from: p[i], to: p[bestJ]})
	}
	return nil
}

// canSee reports whether the diagonal from vertex a to vertex b lies inside
// the polygon and is not blocked by any edge.
func canSee(p Polygon, a, b int) bool {
	pa, pb := p.At(a), p.At(b)
	if isLeftOn(p.At(a+1), pa, pb) && isRightOn(p.At(a-1), pa, pb) {
		return false
	}
	dist := squareDist(pa, pb)
	n := len(p)
	for i := 0; i < n; i++ {
		// incident edges
		if (i+1)%n == a || i == a {
			continue
		}
		if isLeftOn(pa, pb, p.At(i+1)) && isRightOn(pa, pb, p.At(i)) {
			q := lineIntersection(pa, pb, p.At(i), p.At(i+1))
			if squareDist(pa, q) < dist {
				return false
			}
		}
	}
	return true
}

// subPolygon copies the vertices from i to j inclusive, wrapping around.
func subPolygon(p Polygon, i, j int) Polygon {
	if i < j {
		return p[i : j+1].Clone()
	}
	out := make(Polygon, 0, len(p)-i+j+1)
	out = append(out, p[i:]...)
	return append(out, p[:j+1]...)
}

// slicePolygon applies the cuts in order. Each cut splits the first piece that
// holds both of its endpoints.
func slicePolygon(p Polygon, cuts []cut) []Polygon {
	result := []Polygon{p.Clone()}
	for _, c := range cuts {
		for k, poly := range result {
			x, y := poly.Index(c.from), poly.Index(c.to)
			if x < 0 || y < 0 {
				continue
			}
			if x > y {
				x, y = y, x
			}
			left := poly[x : y+1].Clone()
			right := make(Polygon, 0, len(poly)-y+x+1)
			right = append(right, poly[y:]...)
			right = append(right, poly[:x+1]...)

			result = append(result[:k], result[k+1:]...)
			result = append(result, left, right)
			break
		}
	}
	return result
}

// lineIntersection intersects the infinite lines through (p1, p2) and (q1, q2).
// Parallel lines yield the zero point.
func lineIntersection(p1, p2, q1, q2 Point2D) Point2D {
	a1 := p2.Y - p1.Y
	b1 := p1.X - p2.X
	c1 := a1*p1.X + b1*p1.Y
	a2 := q2.Y - q1.Y
	b2 := q1.X - q2.X
	c2 := a2*q1.X + b2*q1.Y
	det := a1*b2 - a2*b1
	if det == 0 {
		return Point2D{}
	}
	return Point2D{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
}

func squareDist(a, b Point2D) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}
