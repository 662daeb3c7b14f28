package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/RoomCraft/internal/model"
	"github.com/zyedidia/generic/mapset"
)

// ReportVersion is written into every run report.
const ReportVersion = "1.0.0"

// Report is the JSON record of one furnished house.
type Report struct {
	Version   string       `json:"version"`
	CreatedAt string       `json:"created_at"`
	House     *model.House `json:"house"`
	// Connections maps each room id to the ids of rooms sharing a door with it.
	Connections map[int][]int          `json:"connections"`
	RoomTypes   map[model.RoomType]int `json:"room_types"`
	Furniture   int                    `json:"furniture"`
}

// NewReport summarises a house.
func NewReport(house *model.House) Report {
	r := Report{
		Version:     ReportVersion,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		House:       house,
		Connections: make(map[int][]int, len(house.Rooms)),
		RoomTypes:   make(map[model.RoomType]int),
		Furniture:   house.FurnitureCount(),
	}
	for _, room := range house.Rooms {
		r.Connections[room.ID] = room.ConnectedIDs()
		r.RoomTypes[room.Type]++
	}
	return r
}

// SaveReport writes the run report for house to path.
func SaveReport(path string, house *model.House) error {
	data, err := json.MarshalIndent(NewReport(house), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// LoadReport reads a run report and restores room connectivity.
func LoadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report file: %w", err)
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("failed to parse report file: %w", err)
	}
	if report.Version == "" {
		return Report{}, fmt.Errorf("invalid report file: missing version field")
	}
	if report.House == nil {
		return Report{}, fmt.Errorf("invalid report file: missing house")
	}
	for _, room := range report.House.Rooms {
		room.Connected = mapset.New[int]()
		for _, id := range report.Connections[room.ID] {
			room.Connected.Put(id)
		}
	}
	return report, nil
}
