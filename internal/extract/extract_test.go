package extract

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/piwi3910/RoomCraft/internal/geometry"
	"github.com/piwi3910/RoomCraft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) geometry.Point2D { return geometry.Point2D{X: x, Y: y} }

func extractRows(t *testing.T, rows ...string) *model.House {
	t.Helper()
	house, err := NewExtractor(10, nil).Extract(model.ParseSchema(rows...))
	require.NoError(t, err)
	return house
}

func TestExtract_SingleRoom(t *testing.T) {
	house := extractRows(t,
		".......",
		".#####.",
		".#...#.",
		".#####.",
		".......",
	)
	require.Len(t, house.Rooms, 1)
	room := house.Rooms[0]

	assert.Equal(t, 1, room.ID)
	assert.Equal(t, 3, room.CellCount)
	assert.InDelta(t, 300.0, room.Area, 1e-9)
	assert.Equal(t, pt(10, 10), room.Origin)
	assert.Equal(t, pt(50, 30), room.FarthestPoint)
	assert.InDelta(t, 70.0, house.Width, 1e-9)
	assert.InDelta(t, 50.0, house.Height, 1e-9)

	assert.True(t, room.Outline.Equal(geometry.Polygon{pt(0, 0), pt(0, 20), pt(40, 20), pt(40, 0)}),
		"unexpected outline %v", room.Outline)
	assert.Empty(t, room.Doors)
	assert.Empty(t, room.Windows)
	require.Len(t, room.Walls, 4)

	left := room.Walls[0]
	assert.True(t, left.Polygon.Equal(geometry.Polygon{pt(0, 0), pt(10, 0), pt(10, 30), pt(0, 30)}))
	assert.Equal(t, model.Right, left.Orientation)
	assert.Equal(t, geometry.Segment{A: pt(10, 0), B: pt(10, 30)}, left.InnerMargin)
	assert.Nil(t, left.Blocker)

	bottom := room.Walls[1]
	assert.True(t, bottom.Polygon.Equal(geometry.Polygon{pt(10, 20), pt(50, 20), pt(50, 30), pt(10, 30)}))
	assert.Equal(t, model.Up, bottom.Orientation)
	assert.Equal(t, geometry.Segment{A: pt(10, 20), B: pt(50, 20)}, bottom.InnerMargin)

	right := room.Walls[2]
	assert.True(t, right.Polygon.Equal(geometry.Polygon{pt(50, 20), pt(40, 20), pt(40, 0), pt(50, 0)}))
	assert.Equal(t, model.Left, right.Orientation)
	assert.Equal(t, geometry.Segment{A: pt(40, 20), B: pt(40, 0)}, right.InnerMargin)

	top := room.Walls[3]
	assert.True(t, top.Polygon.Equal(geometry.Polygon{pt(40, 0), pt(0, 0), pt(0, 10), pt(40, 10)}))
	assert.Equal(t, model.Down, top.Orientation)
	assert.Equal(t, geometry.Segment{A: pt(0, 0), B: pt(40, 0)}, top.InnerMargin)
}

func TestExtract_TwoRoomsWithDoorAndWindow(t *testing.T) {
	house := extractRows(t,
		".........",
		".##W####.",
		".#..D..#.",
		".#######.",
		".........",
	)
	require.Len(t, house.Rooms, 2)
	a, b := house.Rooms[0], house.Rooms[1]
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	require.Len(t, a.Doors, 1)
	require.Len(t, a.Windows, 1)
	assert.Len(t, a.Walls, 4)
	require.Len(t, b.Doors, 1)
	assert.Empty(t, b.Windows)
	assert.Len(t, b.Walls, 5)

	// the shared door occupies the same world cell from both sides
	doorA := a.Doors[0].Polygon.Translate(a.Origin.X, a.Origin.Y)
	doorB := b.Doors[0].Polygon.Translate(b.Origin.X, b.Origin.Y)
	assert.True(t, doorA.SameVertices(doorB), "door corners %v vs %v", doorA, doorB)

	assert.Equal(t, model.Left, a.Doors[0].Orientation)
	assert.Equal(t, model.Right, b.Doors[0].Orientation)

	window := a.Windows[0]
	assert.Equal(t, model.Down, window.Orientation)
	assert.True(t, window.Polygon.Equal(geometry.Polygon{pt(30, 0), pt(20, 0), pt(20, 10), pt(30, 10)}))
	min, max := window.Blocker.BoundingBox()
	assert.Equal(t, pt(20, 10), min)
	assert.Equal(t, pt(30, 20), max)
}

func TestExtract_LShapedRoom(t *testing.T) {
	house := extractRows(t,
		"........",
		".####...",
		".#..#...",
		".#..###.",
		".#....#.",
		".######.",
		"........",
	)
	require.Len(t, house.Rooms, 1)
	room := house.Rooms[0]

	assert.Equal(t, 8, room.CellCount)
	assert.True(t, room.Outline.Equal(geometry.Polygon{
		pt(0, 0), pt(0, 40), pt(50, 40), pt(50, 20), pt(30, 20), pt(30, 0),
	}), "unexpected outline %v", room.Outline)
	assert.Len(t, room.Walls, 6)
	assert.Equal(t, geometry.CW, geometry.Orientation(room.Outline))
	assert.Len(t, room.ConvexParts(), 2)
}

func TestExtract_OutlineHasNoConsecutiveDuplicates(t *testing.T) {
	house := extractRows(t,
		"..........",
		".########.",
		".#..D...#.",
		".#..#...W.",
		".####...#.",
		"....#...#.",
		"....#####.",
		"..........",
	)
	require.NotEmpty(t, house.Rooms)
	ids := map[int]bool{}
	for _, room := range house.Rooms {
		assert.False(t, ids[room.ID], "duplicate room id %d", room.ID)
		ids[room.ID] = true
		for i, p := range room.Outline {
			assert.NotEqual(t, p, room.Outline.At(i+1), "room %d repeats vertex %v", room.ID, p)
		}
		for _, s := range append(room.Doors, room.Windows...) {
			assert.False(t, blockerOverlaps(s), "blocker overlaps its structure in room %d", room.ID)
		}
	}
}

func blockerOverlaps(s *model.Structure) bool {
	bmin, bmax := s.Blocker.BoundingBox()
	pmin, pmax := s.Polygon.BoundingBox()
	return bmin.X < pmax.X && pmin.X < bmax.X && bmin.Y < pmax.Y && pmin.Y < bmax.Y
}

func TestExtract_DoesNotModifyInput(t *testing.T) {
	schema := model.ParseSchema(".....", ".###.", ".#.#.", ".###.", ".....")
	before := schema.Clone()
	_, err := NewExtractor(10, nil).Extract(schema)
	require.NoError(t, err)
	for y := 0; y < schema.Height(); y++ {
		for x := 0; x < schema.Width(); x++ {
			got, _ := schema.Get(x, y)
			want, _ := before.Get(x, y)
			assert.Equal(t, want, got)
		}
	}
}

func TestExtract_NoRooms(t *testing.T) {
	house := extractRows(t, "....", "....")
	assert.Empty(t, house.Rooms)
}

func TestExtract_SeedNotBlank(t *testing.T) {
	_, err := NewExtractor(10, nil).Extract(model.ParseSchema("#...", "...."))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadSchema))
}

func TestExtract_DeadEndWalk(t *testing.T) {
	// the room is open to the bottom image edge, so the rim never closes
	_, err := NewExtractor(10, nil).Extract(model.ParseSchema(
		".....",
		".###.",
		".#.#.",
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadSchema)
	assert.Contains(t, err.Error(), "room 1")
}

func TestMaterialOf(t *testing.T) {
	assert.Equal(t, model.Blank, MaterialOf(color.White))
	assert.Equal(t, model.Wall, MaterialOf(color.Black))
	assert.Equal(t, model.Door, MaterialOf(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, model.Window, MaterialOf(color.NRGBA{B: 255, A: 255}))
	assert.Equal(t, model.Blank, MaterialOf(color.NRGBA{R: 12, G: 200, B: 7, A: 255}), "unknown colors are blank")
	assert.Equal(t, model.Blank, MaterialOf(color.NRGBA{A: 128}), "translucent black is not a wall")
}

func TestExtractImage_PNG(t *testing.T) {
	rows := []string{
		".......",
		".##W##.",
		".#...#.",
		".#####.",
		".......",
	}
	img := image.NewNRGBA(image.Rect(0, 0, 7, 5))
	for y, r := range rows {
		for x, c := range r {
			switch c {
			case '#':
				img.Set(x, y, color.Black)
			case 'W':
				img.Set(x, y, color.NRGBA{B: 255, A: 255})
			default:
				img.Set(x, y, color.White)
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	house, err := NewExtractor(10, nil).ExtractImage(&buf)
	require.NoError(t, err)
	require.Len(t, house.Rooms, 1)
	assert.Len(t, house.Rooms[0].Windows, 1)
	assert.Equal(t, 3, house.Rooms[0].CellCount)
}

func TestDecodeSchema_Garbage(t *testing.T) {
	_, err := DecodeSchema(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}
