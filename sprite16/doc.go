// Package sprite16 provides a 1-bit bitmap format for the HT16K33 LED driver.
//
// The HT16K33 display buffer holds 8 rows of 16 pixels, one uint16 per row
// with bit b lighting column b. Sprite stores its pixels in exactly that
// layout, so a sprite row can be OR'd straight into the display buffer.
//
// Memory layout example for a 5-pixel-wide, 2-row sprite:
//
//	Row 0: # . # . #   ->  Pix[0] = 0b10101 = 0x0015
//	Row 1: . # . # .   ->  Pix[1] = 0b01010 = 0x000A
//
// This package provides:
//
// - Bit: a 1-bit color type (On or Off)
// - BitModel: a color model for converting standard Go colors to Bit
// - Sprite: an image.Image and draw.Image implementation in row layout
//
// Example usage:
//
//	// Create an 8x8 sprite
//	s := sprite16.New(image.Rect(0, 0, 8, 8))
//
//	// Light a pixel
//	s.SetBit(3, 2, sprite16.On)
//
//	// Read it back
//	if s.BitAt(3, 2) {
//		println("lit")
//	}
//
//	// Or build one straight from row data
//	heart := sprite16.FromRows(
//		0b0000011001100000,
//		0b0000111111110000,
//		0b0000111111110000,
//		0b0000011111100000,
//		0b0000001111000000,
//		0b0000000110000000,
//	)
//
//	// Use with standard Go image operations
//	draw.Draw(s, s.Bounds(), image.NewUniform(sprite16.On), image.Point{}, draw.Src)
//
// Sprites compose onto the display through ht16k33.Dev.DrawSprite, which ORs
// each row into the display buffer at a column/row offset.
package sprite16
