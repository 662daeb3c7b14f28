package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/RoomCraft/internal/catalog"
	"github.com/piwi3910/RoomCraft/internal/model"
)

func TestSaveAndLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	furniturePath := filepath.Join(dir, "furniture.json")
	roomsPath := filepath.Join(dir, "rooms.json")

	if err := SaveCatalog(furniturePath, roomsPath, catalog.DefaultFurniture(), catalog.DefaultRooms()); err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}

	cat, err := LoadCatalog(furniturePath, roomsPath)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	stock := catalog.Default()
	if cat.DoorAsset != stock.DoorAsset || cat.WindowAsset != stock.WindowAsset {
		t.Errorf("assets not restored: %s/%s", cat.DoorAsset, cat.WindowAsset)
	}
	for _, rt := range model.RoomTypes {
		got, want := cat.Entries(rt), stock.Entries(rt)
		if len(got) != len(want) {
			t.Fatalf("%s: expected %d entries, got %d", rt, len(want), len(got))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("%s entry %d: expected %+v, got %+v", rt, i, want[i], got[i])
			}
		}
	}
}

func TestLoadCatalogFallsBackToStock(t *testing.T) {
	dir := t.TempDir()
	cat, err := LoadCatalog(filepath.Join(dir, "furniture.json"), filepath.Join(dir, "rooms.json"))
	if err != nil {
		t.Fatalf("expected stock catalog, got error: %v", err)
	}
	if len(cat.Entries(model.Bedroom)) == 0 {
		t.Error("expected stock bedroom entries")
	}
}

func TestLoadCatalogOneFileMissing(t *testing.T) {
	dir := t.TempDir()
	furniturePath := filepath.Join(dir, "furniture.json")
	if err := os.WriteFile(furniturePath, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCatalog(furniturePath, filepath.Join(dir, "rooms.json")); err == nil {
		t.Fatal("expected error when the room catalog is missing")
	}
}

func TestLoadCatalogInvalid(t *testing.T) {
	dir := t.TempDir()
	furniturePath := filepath.Join(dir, "furniture.json")
	roomsPath := filepath.Join(dir, "rooms.json")
	if err := os.WriteFile(furniturePath, []byte(`{"bed":{"src":"bed.png","width":"wide","height":2}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(roomsPath, []byte(`{"bedroom":{"bed":{"likeness":1}}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCatalog(furniturePath, roomsPath)
	if !errors.Is(err, catalog.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestInitWorkspace(t *testing.T) {
	dir := t.TempDir()

	written, err := InitWorkspace(dir)
	if err != nil {
		t.Fatalf("InitWorkspace failed: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 3 files written, got %v", written)
	}

	cfg, err := LoadAppConfig(filepath.Join(dir, ConfigFileName))
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if _, err := LoadCatalog(filepath.Join(dir, cfg.Catalog.Furniture), filepath.Join(dir, cfg.Catalog.Rooms)); err != nil {
		t.Fatalf("written catalog does not load: %v", err)
	}

	// a second run keeps what is there
	written, err = InitWorkspace(dir)
	if err != nil {
		t.Fatalf("second InitWorkspace failed: %v", err)
	}
	if len(written) != 0 {
		t.Errorf("expected nothing rewritten, got %v", written)
	}
}
