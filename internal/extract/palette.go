package extract

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/piwi3910/RoomCraft/internal/model"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// palette maps the exact floor-plan colors to materials.
var palette = map[color.NRGBA]model.Material{
	{R: 255, G: 255, B: 255, A: 255}: model.Blank,
	{R: 255, G: 0, B: 0, A: 255}:     model.Door,
	{R: 0, G: 0, B: 255, A: 255}:     model.Window,
	{R: 0, G: 0, B: 0, A: 255}:       model.Wall,
}

// MaterialOf classifies a pixel. Colors outside the palette, including any
// translucent pixel, are Blank.
func MaterialOf(c color.Color) model.Material {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if m, ok := palette[n]; ok {
		return m
	}
	return model.Blank
}

// SchemaFromImage converts every pixel of img to its material.
func SchemaFromImage(img image.Image) *model.Schema {
	b := img.Bounds()
	s := model.NewGrid(b.Dx(), b.Dy(), model.Blank)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.Set(x-b.Min.X, y-b.Min.Y, MaterialOf(img.At(x, y)))
		}
	}
	return s
}

// DecodeSchema decodes a PNG, GIF, JPEG, BMP, TIFF or WebP floor plan.
func DecodeSchema(r io.Reader) (*model.Schema, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode floor plan: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty %s image", ErrBadSchema, format)
	}
	return SchemaFromImage(img), nil
}

// LoadSchema opens and decodes a floor-plan image file.
func LoadSchema(path string) (*model.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open floor plan: %w", err)
	}
	defer f.Close()
	return DecodeSchema(f)
}
