package main

import (
	"fmt"
	"strings"

	"github.com/piwi3910/RoomCraft/internal/engine"
	"github.com/piwi3910/RoomCraft/internal/model"
)

func printHouse(h *model.House) {
	fmt.Printf("House %.0f x %.0f, %d rooms\n", h.Width, h.Height, len(h.Rooms))
	for _, r := range h.Rooms {
		fmt.Printf("  Room %d [%s] area %.0f, %d doors, %d windows",
			r.ID, r.Type, r.Area, len(r.Doors), len(r.Windows))
		if ids := r.ConnectedIDs(); len(ids) > 0 {
			fmt.Printf(", connected to %v", ids)
		}
		fmt.Println()
		if len(r.Furniture) > 0 {
			kinds := make([]string, 0, len(r.Furniture))
			for _, f := range r.Furniture {
				kinds = append(kinds, f.Type)
			}
			fmt.Printf("    furniture: %s\n", strings.Join(kinds, ", "))
		}
	}
}

func printComparison(results []engine.ComparisonResult) {
	fmt.Printf("%-22s %10s  %s\n", "SCENARIO", "FITNESS", "ROOM TYPES")
	for _, res := range results {
		parts := make([]string, 0, len(model.RoomTypes))
		for _, rt := range model.RoomTypes {
			if n := res.Counts[rt]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s=%d", rt, n))
			}
		}
		fmt.Printf("%-22s %10.0f  %s\n", res.Scenario.Name, res.Fitness, strings.Join(parts, " "))
	}
}
