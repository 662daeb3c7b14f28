package export

import (
	"fmt"

	"github.com/piwi3910/RoomCraft/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the furniture schedule workbook.
const (
	SheetRooms     = "Rooms"
	SheetFurniture = "Furniture"
)

var (
	roomsHeader     = []interface{}{"Room", "Type", "Area", "Cells", "Doors", "Windows", "Walls", "Furniture", "Connected"}
	furnitureHeader = []interface{}{"Room", "Room Type", "ID", "Furniture", "Asset", "Width", "Depth", "Orientation", "Tall", "X", "Y"}
)

// ExportSchedule writes an XLSX workbook with one row per room on the Rooms
// sheet and one row per placed item on the Furniture sheet. Furniture
// positions are the world coordinates of the footprint's top-left corner.
func ExportSchedule(path string, house *model.House) error {
	if house == nil || len(house.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetRooms); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetFurniture); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRows(f, SheetRooms, roomsHeader, roomRows(house), headerStyle); err != nil {
		return err
	}
	if err := writeRows(f, SheetFurniture, furnitureHeader, furnitureRows(house), headerStyle); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}
	return nil
}

func roomRows(house *model.House) [][]interface{} {
	rows := make([][]interface{}, 0, len(house.Rooms))
	for _, room := range house.Rooms {
		rows = append(rows, []interface{}{
			room.ID,
			room.Type.String(),
			room.Area,
			room.CellCount,
			len(room.Doors),
			len(room.Windows),
			len(room.Walls),
			len(room.Furniture),
			joinInts(room.ConnectedIDs()),
		})
	}
	return rows
}

func furnitureRows(house *model.House) [][]interface{} {
	var rows [][]interface{}
	for _, room := range house.Rooms {
		for _, item := range room.Furniture {
			min, max := item.Polygon.BoundingBox()
			width, depth := max.X-min.X, max.Y-min.Y
			if item.Orientation == model.Left || item.Orientation == model.Right {
				width, depth = depth, width
			}
			rows = append(rows, []interface{}{
				room.ID,
				room.Type.String(),
				item.ID,
				item.Type,
				item.Asset,
				width,
				depth,
				item.Orientation.String(),
				item.Tall,
				min.X + room.Origin.X,
				min.Y + room.Origin.Y,
			})
		}
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 14); err != nil {
		return fmt.Errorf("failed to size %s columns: %w", sheet, err)
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}
