package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/RoomCraft/internal/catalog"
	"github.com/piwi3910/RoomCraft/internal/model"
)

// SaveCatalog writes the furniture and room documents as indented JSON.
// It creates parent directories if they do not exist.
func SaveCatalog(furniturePath, roomsPath string, furniture catalog.FurnitureFile, rooms catalog.RoomsFile) error {
	if err := writeJSON(furniturePath, furniture); err != nil {
		return fmt.Errorf("failed to write furniture catalog: %w", err)
	}
	if err := writeJSON(roomsPath, rooms); err != nil {
		return fmt.Errorf("failed to write room catalog: %w", err)
	}
	return nil
}

// LoadCatalog reads and validates the catalog files. If neither file exists
// the stock catalog is returned; if only one exists that is an error.
func LoadCatalog(furniturePath, roomsPath string) (*catalog.Catalog, error) {
	_, ferr := os.Stat(furniturePath)
	_, rerr := os.Stat(roomsPath)
	if errors.Is(ferr, os.ErrNotExist) && errors.Is(rerr, os.ErrNotExist) {
		return catalog.Default(), nil
	}
	return catalog.Load(furniturePath, roomsPath)
}

// InitWorkspace writes the default settings file and stock catalog into dir.
// Files that already exist are left untouched. It returns the paths written.
func InitWorkspace(dir string) ([]string, error) {
	cfg := model.DefaultAppConfig()
	files := []struct {
		path  string
		write func(string) error
	}{
		{filepath.Join(dir, ConfigFileName), func(p string) error { return SaveAppConfig(p, cfg) }},
		{filepath.Join(dir, cfg.Catalog.Furniture), func(p string) error { return writeJSON(p, catalog.DefaultFurniture()) }},
		{filepath.Join(dir, cfg.Catalog.Rooms), func(p string) error { return writeJSON(p, catalog.DefaultRooms()) }},
	}

	var written []string
	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			continue
		}
		if err := f.write(f.path); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", f.path, err)
		}
		written = append(written, f.path)
	}
	return written, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
