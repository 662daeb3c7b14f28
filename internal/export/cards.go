package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/RoomCraft/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// CardInfo holds the data encoded into each room card's QR code.
type CardInfo struct {
	RoomID    int            `json:"room"`
	Type      model.RoomType `json:"type"`
	Area      float64        `json:"area"`
	Doors     int            `json:"doors"`
	Windows   int            `json:"windows"`
	Connected []int          `json:"connected"`
	Furniture map[string]int `json:"furniture"`
}

// Card layout constants: 2 columns x 4 rows on A4 portrait.
const (
	cardMarginTop  = 10.0
	cardMarginLeft = 10.0
	cardWidth      = 95.0
	cardHeight     = 68.0
	cardCols       = 2
	cardRows       = 4
	cardsPerPage   = cardCols * cardRows
	cardQRSize     = 40.0
	cardPadding    = 3.0
)

// ExportRoomCards generates a PDF with one card per room. Each card lists
// the room's type, size, openings and furniture next to a QR code holding
// the same summary as JSON.
func ExportRoomCards(path string, house *model.House) error {
	cards := CollectCardInfos(house)
	if len(cards) == 0 {
		return fmt.Errorf("no rooms to generate cards for")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, card := range cards {
		if i%cardsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % cardsPerPage
		col := posOnPage % cardCols
		row := posOnPage / cardCols

		x := cardMarginLeft + float64(col)*cardWidth
		y := cardMarginTop + float64(row)*cardHeight

		if err := renderCard(pdf, x, y, card); err != nil {
			return fmt.Errorf("failed to render card for room %d: %w", card.RoomID, err)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write room cards: %w", err)
	}
	return nil
}

// CollectCardInfos summarises every room of the house.
func CollectCardInfos(house *model.House) []CardInfo {
	if house == nil {
		return nil
	}
	cards := make([]CardInfo, 0, len(house.Rooms))
	for _, room := range house.Rooms {
		furniture := make(map[string]int)
		for _, f := range room.Furniture {
			furniture[f.Type]++
		}
		cards = append(cards, CardInfo{
			RoomID:    room.ID,
			Type:      room.Type,
			Area:      room.Area,
			Doors:     len(room.Doors),
			Windows:   len(room.Windows),
			Connected: room.ConnectedIDs(),
			Furniture: furniture,
		})
	}
	return cards
}

func renderCard(pdf *fpdf.Fpdf, x, y float64, info CardInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal card info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_room_%d", info.RoomID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + cardWidth - cardQRSize - cardPadding
	qrY := y + (cardHeight-cardQRSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, cardQRSize, cardQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + cardPadding
	textW := cardWidth - cardQRSize - 3*cardPadding

	col := roomColors[info.Type]
	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.Rect(textX, y+cardPadding, textW, 7, "F")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX+1, y+cardPadding)
	pdf.CellFormat(textW-1, 7, fmt.Sprintf("Room %d: %s", info.RoomID, info.Type), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	lineY := y + cardPadding + 9
	lines := []string{
		fmt.Sprintf("Area: %.0f", info.Area),
		fmt.Sprintf("Doors: %d  Windows: %d", info.Doors, info.Windows),
		"Connected: " + joinInts(info.Connected),
	}
	for _, line := range lines {
		pdf.SetXY(textX, lineY)
		pdf.CellFormat(textW, 4, line, "", 1, "L", false, 0, "")
		lineY += 4.5
	}

	kinds := make([]string, 0, len(info.Furniture))
	for k := range info.Furniture {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(80, 80, 80)
	lineY += 1
	for _, k := range kinds {
		if lineY > y+cardHeight-cardPadding-3 {
			pdf.SetXY(textX, lineY)
			pdf.CellFormat(textW, 3.5, "...", "", 1, "L", false, 0, "")
			break
		}
		pdf.SetXY(textX, lineY)
		pdf.CellFormat(textW, 3.5, fmt.Sprintf("%dx %s", info.Furniture[k], k), "", 1, "L", false, 0, "")
		lineY += 3.5
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}
