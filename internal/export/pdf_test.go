package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/RoomCraft/internal/geometry"
	"github.com/piwi3910/RoomCraft/internal/model"
)

func rect(x, y, w, h float64) geometry.Polygon {
	return geometry.Rect(geometry.Point2D{X: x, Y: y}, w, h)
}

// buildTestHouse creates two furnished rooms sharing a door.
func buildTestHouse() *model.House {
	bedroom := model.NewRoom(1)
	bedroom.Type = model.Bedroom
	bedroom.Origin = geometry.Point2D{X: 10, Y: 10}
	bedroom.Outline = rect(0, 0, 60, 60)
	bedroom.Area = 2500
	bedroom.CellCount = 25
	bedroom.AddStructure(model.NewStructure(model.KindWall, rect(0, 0, 10, 70), model.Right,
		geometry.Segment{A: geometry.Point2D{X: 10, Y: 0}, B: geometry.Point2D{X: 10, Y: 70}}, 10))
	bedroom.AddStructure(model.NewStructure(model.KindDoor, rect(60, 30, 10, 10), model.Left,
		geometry.Segment{A: geometry.Point2D{X: 60, Y: 40}, B: geometry.Point2D{X: 60, Y: 30}}, 10))
	bedroom.AddStructure(model.NewStructure(model.KindWindow, rect(50, 0, 10, 10), model.Down,
		geometry.Segment{A: geometry.Point2D{X: 50, Y: 0}, B: geometry.Point2D{X: 60, Y: 0}}, 10))
	bedroom.Furniture = []*model.Furniture{
		model.NewFurniture("bed", rect(12, 12, 20, 30), model.Down, "bed.png", false),
		model.NewFurniture("wardrobe", rect(12, 45, 10, 20), model.Right, "wardrobe.png", true),
	}

	kitchen := model.NewRoom(2)
	kitchen.Type = model.Kitchen
	kitchen.Origin = geometry.Point2D{X: 70, Y: 10}
	kitchen.Outline = rect(0, 0, 60, 60)
	kitchen.Area = 2500
	kitchen.CellCount = 25
	kitchen.AddStructure(model.NewStructure(model.KindDoor, rect(0, 30, 10, 10), model.Right,
		geometry.Segment{A: geometry.Point2D{X: 10, Y: 30}, B: geometry.Point2D{X: 10, Y: 40}}, 10))
	kitchen.Furniture = []*model.Furniture{
		model.NewFurniture("fridge", rect(40, 12, 10, 10), model.Down, "fridge.png", true),
	}
	model.Connect(bedroom, kitchen)

	return &model.House{Rooms: []*model.Room{bedroom, kitchen}, Width: 150, Height: 90}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.pdf")

	if err := ExportPDF(path, buildTestHouse()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 1000 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[:5]) != "%PDF-" {
		t.Errorf("output does not start with a PDF header: %q", data[:5])
	}
}

func TestExportPDF_EmptyHouse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportPDF(path, &model.House{}); err == nil {
		t.Fatal("expected error for house without rooms, got nil")
	}
	if err := ExportPDF(path, nil); err == nil {
		t.Fatal("expected error for nil house, got nil")
	}
}

func TestExportPDF_ManyRooms(t *testing.T) {
	house := &model.House{Width: 1000, Height: 1000}
	for i := 1; i <= 40; i++ {
		room := model.NewRoom(i)
		room.Type = model.RoomTypes[i%len(model.RoomTypes)]
		room.Origin = geometry.Point2D{X: float64((i - 1) % 8 * 120), Y: float64((i - 1) / 8 * 120)}
		room.Outline = rect(0, 0, 100, 100)
		house.Rooms = append(house.Rooms, room)
	}

	path := filepath.Join(t.TempDir(), "many.pdf")
	if err := ExportPDF(path, house); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}

func TestExportPDF_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "plan.pdf")
	if err := ExportPDF(path, buildTestHouse()); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestFurnitureColorIsStable(t *testing.T) {
	for _, kind := range []string{"bed", "sofa", "a-very-long-furniture-name-that-overflows"} {
		a, b := furnitureColor(kind), furnitureColor(kind)
		if a != b {
			t.Errorf("color of %s changed between calls", kind)
		}
	}
}

func TestJoinInts(t *testing.T) {
	tests := []struct {
		in   []int
		want string
	}{
		{nil, ""},
		{[]int{3}, "3"},
		{[]int{1, 2, 10}, "1, 2, 10"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			if got := joinInts(tt.in); got != tt.want {
				t.Errorf("joinInts(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
