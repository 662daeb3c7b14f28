package model

import (
	"testing"

	"github.com/piwi3910/RoomCraft/internal/geometry"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(3, 2, Blank)

	if _, ok := g.Get(-1, 0); ok {
		t.Error("expected out-of-bounds read to report false")
	}
	if _, ok := g.Get(3, 0); ok {
		t.Error("expected x == width to be out of bounds")
	}
	if _, ok := g.Get(0, 2); ok {
		t.Error("expected y == height to be out of bounds")
	}
	if g.Set(5, 5, Wall) {
		t.Error("expected out-of-bounds write to report false")
	}
	if !g.Set(2, 1, Door) {
		t.Fatal("expected in-bounds write to succeed")
	}
	if v, ok := g.Get(2, 1); !ok || v != Door {
		t.Errorf("expected Door at (2,1), got %v", v)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2, Blank)
	c := g.Clone()
	c.Set(0, 0, Wall)

	if v, _ := g.Get(0, 0); v != Blank {
		t.Errorf("clone write leaked into original: %v", v)
	}
}

func TestParseSchema(t *testing.T) {
	s := ParseSchema(
		"#D#",
		"W .",
		"##",
	)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("expected 3x3, got %dx%d", s.Width(), s.Height())
	}
	cases := []struct {
		x, y int
		want Material
	}{
		{0, 0, Wall}, {1, 0, Door}, {0, 1, Window}, {1, 1, Blank}, {2, 1, Blank}, {2, 2, Blank},
	}
	for _, c := range cases {
		if got, _ := s.Get(c.x, c.y); got != c.want {
			t.Errorf("(%d,%d): expected %v, got %v", c.x, c.y, c.want, got)
		}
	}
}

func TestMaterialIsStructure(t *testing.T) {
	for _, m := range []Material{Wall, Door, Window} {
		if !m.IsStructure() {
			t.Errorf("%v should be a structure", m)
		}
	}
	for _, m := range []Material{Blank, Marked} {
		if m.IsStructure() {
			t.Errorf("%v should not be a structure", m)
		}
	}
}

func TestDirectionPerpendicular(t *testing.T) {
	if got := Down.Perpendicular(); got != [2]Direction{Left, Right} {
		t.Errorf("Down: got %v", got)
	}
	if got := Right.Perpendicular(); got != [2]Direction{Up, Down} {
		t.Errorf("Right: got %v", got)
	}
	dx, dy := Down.Step()
	if dx != 0 || dy != 1 {
		t.Errorf("Down step should grow y, got (%d,%d)", dx, dy)
	}
}

func TestRoomTypeRoundTrip(t *testing.T) {
	for _, rt := range RoomTypes {
		parsed, err := ParseRoomType(rt.String())
		if err != nil {
			t.Fatalf("parse %s: %v", rt, err)
		}
		if parsed != rt {
			t.Errorf("expected %v, got %v", rt, parsed)
		}
	}
	if _, err := ParseRoomType("garage"); err == nil {
		t.Error("expected error for unknown room type")
	}

	var rt RoomType
	if err := rt.UnmarshalText([]byte("none")); err != nil || rt != RoomTypeNone {
		t.Errorf("expected none to decode to RoomTypeNone, got %v (%v)", rt, err)
	}
}

func TestNewBlockerOutsideStructure(t *testing.T) {
	poly := geometry.Rect(geometry.Point2D{X: 10, Y: 20}, 10, 30)
	for _, dir := range []Direction{Up, Down, Left, Right} {
		b := NewBlocker(poly, dir, 10)
		if len(b) != 4 {
			t.Fatalf("%v: expected 4 points, got %d", dir, len(b))
		}
		bmin, bmax := b.BoundingBox()
		pmin, pmax := poly.BoundingBox()
		overlapX := bmin.X < pmax.X && pmin.X < bmax.X
		overlapY := bmin.Y < pmax.Y && pmin.Y < bmax.Y
		if overlapX && overlapY {
			t.Errorf("%v: blocker %v overlaps structure interior", dir, b)
		}
	}

	up := NewBlocker(poly, Up, 10)
	if min, _ := up.BoundingBox(); min.Y != 10 {
		t.Errorf("up blocker should start one thickness above, got %v", min)
	}
	right := NewBlocker(poly, Right, 10)
	if _, max := right.BoundingBox(); max.X != 30 {
		t.Errorf("right blocker should end one thickness to the right, got %v", max)
	}
}

func TestNewStructureBlockerOnlyForOpenings(t *testing.T) {
	poly := geometry.Rect(geometry.Point2D{}, 10, 10)
	margin := geometry.Segment{A: poly[1], B: poly[2]}

	wall := NewStructure(KindWall, poly, Right, margin, 10)
	if wall.Blocker != nil {
		t.Error("walls should not carry a blocker")
	}
	door := NewStructure(KindDoor, poly, Right, margin, 10)
	if door.Blocker == nil {
		t.Error("doors should carry a blocker")
	}
}

func TestRoomConvexPartsCached(t *testing.T) {
	r := NewRoom(1)
	// clockwise L outline as produced by the rim walk
	r.Outline = geometry.Polygon{{X: 0, Y: 0}, {X: 0, Y: 40}, {X: 40, Y: 40}, {X: 40, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 0}}

	parts := r.ConvexParts()
	if len(parts) != 2 {
		t.Fatalf("expected 2 convex parts, got %d", len(parts))
	}
	for _, p := range parts {
		if !geometry.IsConvex(p) {
			t.Errorf("part %v is not convex", p)
		}
	}
	again := r.ConvexParts()
	if &again[0][0] != &parts[0][0] {
		t.Error("expected cached parts on second call")
	}
}

func TestConnectIsSymmetric(t *testing.T) {
	a, b := NewRoom(1), NewRoom(2)
	Connect(a, b)
	Connect(a, b)

	if !a.Connected.Has(2) || !b.Connected.Has(1) {
		t.Error("expected both rooms to record the link")
	}
	if a.Connected.Size() != 1 {
		t.Errorf("expected idempotent connect, got %d links", a.Connected.Size())
	}
	if ids := b.ConnectedIDs(); len(ids) != 1 || ids[0] != 1 {
		t.Errorf("unexpected connected ids %v", ids)
	}
}

func TestHouseRoomLookup(t *testing.T) {
	h := &House{Rooms: []*Room{NewRoom(1), NewRoom(2)}}
	if h.Room(2) == nil || h.Room(2).ID != 2 {
		t.Error("expected to find room 2")
	}
	if h.Room(3) != nil {
		t.Error("expected nil for unknown room")
	}
}

func TestNewFurnitureID(t *testing.T) {
	f := NewFurniture("bed", geometry.Rect(geometry.Point2D{}, 20, 30), Up, "bed.png", false)
	if len(f.ID) != 8 {
		t.Errorf("expected 8-char id, got %q", f.ID)
	}
	g := NewFurniture("bed", f.Polygon, Up, "bed.png", false)
	if f.ID == g.ID {
		t.Error("expected unique ids")
	}
}
