// Package sprite16 provides a 1-bit bitmap format matching the HT16K33 row layout.
//
// Rows are stored one uint16 per row where bit b is the pixel at column b.
// This package provides the Bit color type and the Sprite image implementation.
package sprite16

import (
	"image"
	"image/color"
)

// Bit is a 1-bit color: a pixel is either lit or dark.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit to standard RGBA: white when lit, black otherwise.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B, then
	// threshold at half scale.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Sprite is a 1-bit image at most 16 pixels wide, stored one uint16 per row.
// Bit b of Pix[r] is the pixel at column b of row r, the same layout as the
// HT16K33 display buffer.
type Sprite struct {
	Pix  []uint16        // Row data, top row first
	Rect image.Rectangle // Image bounds
}

// New creates a new Sprite with the specified bounds.
// The width must be at most 16 (one display row).
func New(r image.Rectangle) *Sprite {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Sprite{Rect: r}
	}
	if w > 16 {
		panic("sprite16: width must be at most 16")
	}

	return &Sprite{
		Pix:  make([]uint16, h),
		Rect: r,
	}
}

// FromRows creates a 16-wide Sprite from raw row values, top row first.
func FromRows(rows ...uint16) *Sprite {
	s := &Sprite{
		Pix:  make([]uint16, len(rows)),
		Rect: image.Rect(0, 0, 16, len(rows)),
	}
	copy(s.Pix, rows)
	return s
}

// FromImage renders an image into a new Sprite, lighting every pixel whose
// luminance is at least half scale. Images wider than 16 pixels are cropped
// to their leftmost 16 columns.
func FromImage(img image.Image) *Sprite {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > 16 {
		w = 16
	}

	s := New(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if BitModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(Bit) {
				s.Pix[y] |= 1 << x
			}
		}
	}
	return s
}

// Height returns the number of rows. Together with Row it satisfies the
// sprite source consumed by ht16k33.Dev.DrawSprite.
func (s *Sprite) Height() int {
	return len(s.Pix)
}

// Row returns the bitmap of row i. Out-of-range rows are empty.
func (s *Sprite) Row(i int) uint16 {
	if i < 0 || i >= len(s.Pix) {
		return 0
	}
	return s.Pix[i]
}

// ColorModel returns the color model of the image.
func (s *Sprite) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (s *Sprite) Bounds() image.Rectangle {
	return s.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (s *Sprite) At(x, y int) color.Color {
	return s.BitAt(x, y)
}

// BitAt returns the Bit at (x, y).
func (s *Sprite) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(s.Rect)) {
		return Off
	}
	mask, offset := s.pixOffset(x, y)
	return s.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
// It implements the draw.Image interface.
func (s *Sprite) Set(x, y int, c color.Color) {
	s.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (s *Sprite) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(s.Rect)) {
		return
	}
	mask, offset := s.pixOffset(x, y)
	if b {
		s.Pix[offset] |= mask
	} else {
		s.Pix[offset] &^= mask
	}
}

// pixOffset returns the row index and column mask for the pixel at (x, y).
func (s *Sprite) pixOffset(x, y int) (mask uint16, offset int) {
	offset = y - s.Rect.Min.Y
	mask = 1 << (x - s.Rect.Min.X)
	return
}
