// Package export renders a furnished house to various file formats.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/RoomCraft/internal/geometry"
	"github.com/piwi3910/RoomCraft/internal/model"
)

// rgb represents a fill or stroke color.
type rgb struct {
	R, G, B int
}

// roomColors gives each room type a light floor tint.
var roomColors = map[model.RoomType]rgb{
	model.RoomTypeNone: {R: 240, G: 240, B: 240},
	model.Kitchen:      {R: 255, G: 236, B: 179},
	model.Bedroom:      {R: 200, G: 230, B: 201},
	model.Bathroom:     {R: 179, G: 229, B: 252},
	model.Hall:         {R: 225, G: 190, B: 231},
	model.Livingroom:   {R: 255, G: 204, B: 188},
}

// furnitureColors is cycled through by furniture type.
var furnitureColors = []rgb{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 121, G: 85, B: 72},  // brown
}

var (
	wallColor   = rgb{R: 60, G: 60, B: 60}
	doorColor   = rgb{R: 229, G: 57, B: 53}
	windowColor = rgb{R: 30, G: 136, B: 229}
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// planTransform maps world coordinates onto the page.
type planTransform struct {
	scale, offsetX, offsetY float64
}

func (t planTransform) points(p geometry.Polygon, origin geometry.Point2D) []fpdf.PointType {
	out := make([]fpdf.PointType, len(p))
	for i, q := range p {
		out[i] = fpdf.PointType{
			X: t.offsetX + (q.X+origin.X)*t.scale,
			Y: t.offsetY + (q.Y+origin.Y)*t.scale,
		}
	}
	return out
}

// ExportPDF generates a PDF with the furnished floor plan on the first page
// and a per-room summary on the second.
func ExportPDF(path string, house *model.House) error {
	if house == nil || len(house.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, house)

	pdf.AddPage()
	renderSummaryPage(pdf, house)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func renderPlanPage(pdf *fpdf.Fpdf, house *model.House) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Floor plan (%.0f x %.0f)", house.Width, house.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Rooms: %d | Furniture: %d", len(house.Rooms), house.FurnitureCount())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	scale := math.Min(drawWidth/math.Max(house.Width, 1), drawHeight/math.Max(house.Height, 1))
	t := planTransform{
		scale:   scale,
		offsetX: marginLeft + (drawWidth-house.Width*scale)/2,
		offsetY: drawAreaTop,
	}

	for _, room := range house.Rooms {
		col := roomColors[room.Type]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(180, 180, 180)
		pdf.SetLineWidth(0.2)
		pdf.Polygon(t.points(room.Outline, room.Origin), "F")
	}

	for _, room := range house.Rooms {
		drawStructures(pdf, t, room)
		drawFurniture(pdf, t, room)
		drawRoomLabel(pdf, t, room)
	}

	drawLegend(pdf, pageHeight-marginBottom-legendHeight+4)
}

func drawStructures(pdf *fpdf.Fpdf, t planTransform, room *model.Room) {
	// blockers first so the openings stay visible on top
	pdf.SetDashPattern([]float64{0.8, 0.8}, 0)
	pdf.SetLineWidth(0.15)
	for _, s := range append(append([]*model.Structure{}, room.Doors...), room.Windows...) {
		col := doorColor
		if s.Kind == model.KindWindow {
			col = windowColor
		}
		pdf.SetDrawColor(col.R, col.G, col.B)
		pdf.Polygon(t.points(s.Blocker, room.Origin), "D")
	}
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetLineWidth(0.1)
	for _, s := range room.Structures() {
		col := wallColor
		switch s.Kind {
		case model.KindDoor:
			col = doorColor
		case model.KindWindow:
			col = windowColor
		}
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(col.R, col.G, col.B)
		pdf.Polygon(t.points(s.Polygon, room.Origin), "FD")
	}
}

func drawFurniture(pdf *fpdf.Fpdf, t planTransform, room *model.Room) {
	for _, f := range room.Furniture {
		col := furnitureColor(f.Type)
		pts := t.points(f.Polygon, room.Origin)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Polygon(pts, "FD")

		min, max := bounds(pts)
		w, h := max.X-min.X, max.Y-min.Y
		if w < 8 || h < 3 {
			continue
		}
		pdf.SetFont("Helvetica", "", labelFontSize(w, h))
		pdf.SetTextColor(0, 0, 0)
		label := f.Type
		if labelW := pdf.GetStringWidth(label); labelW < w-1 {
			pdf.SetXY(min.X+(w-labelW)/2, min.Y+h/2-1.5)
			pdf.CellFormat(labelW, 3, label, "", 0, "C", false, 0, "")
		}
	}
}

func drawRoomLabel(pdf *fpdf.Fpdf, t planTransform, room *model.Room) {
	if len(room.Outline) == 0 {
		return
	}
	min, max := bounds(t.points(room.Outline, room.Origin))
	label := fmt.Sprintf("%d %s", room.ID, room.Type)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(80, 80, 80)
	labelW := pdf.GetStringWidth(label)
	pdf.SetXY(min.X+(max.X-min.X-labelW)/2, max.Y-6)
	pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// drawLegend renders the structure color key along the bottom of the plan page.
func drawLegend(pdf *fpdf.Fpdf, y float64) {
	entries := []struct {
		label string
		col   rgb
	}{
		{"Wall", wallColor},
		{"Door", doorColor},
		{"Window", windowColor},
	}
	for _, rt := range model.RoomTypes {
		entries = append(entries, struct {
			label string
			col   rgb
		}{capitalize(rt.String()), roomColors[rt]})
	}

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft
	for _, e := range entries {
		pdf.SetFillColor(e.col.R, e.col.G, e.col.B)
		pdf.Rect(xPos, y+0.5, 3, 3, "F")
		labelW := pdf.GetStringWidth(e.label) + 2
		pdf.SetXY(xPos+4, y)
		pdf.CellFormat(labelW, 4, e.label, "", 0, "L", false, 0, "")
		xPos += labelW + 8
	}
}

// renderSummaryPage draws the per-room breakdown table.
func renderSummaryPage(pdf *fpdf.Fpdf, house *model.House) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "House Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	colWidths := []float64{15, 30, 30, 20, 20, 20, 25, 107}
	headers := []string{"Room", "Type", "Area", "Doors", "Windows", "Walls", "Furniture", "Connected"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, room := range house.Rooms {
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", room.ID),
			room.Type.String(),
			fmt.Sprintf("%.0f", room.Area),
			fmt.Sprintf("%d", len(room.Doors)),
			fmt.Sprintf("%d", len(room.Windows)),
			fmt.Sprintf("%d", len(room.Walls)),
			fmt.Sprintf("%d", len(room.Furniture)),
			joinInts(room.ConnectedIDs()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RoomCraft - Floor Plan Furnisher", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// furnitureColor picks a stable color for a furniture type.
func furnitureColor(kind string) rgb {
	var h uint32
	for _, c := range kind {
		h = h*31 + uint32(c)
	}
	return furnitureColors[h%uint32(len(furnitureColors))]
}

func bounds(pts []fpdf.PointType) (min, max fpdf.PointType) {
	min = fpdf.PointType{X: math.Inf(1), Y: math.Inf(1)}
	max = fpdf.PointType{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range pts {
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	return min, max
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 20:
		return 8
	case minDim > 8:
		return 7
	default:
		return 6
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
