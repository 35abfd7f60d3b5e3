// Package ht16k33 controls a Holtek HT16K33 LED driver and keyscan IC via I²C.
//
// The HT16K33 drives up to 16x8 LEDs and scans a 13x3 key matrix. This driver
// targets the common dual 8x8 matrix wiring, treating both panels as a single
// 16x8 display.
//
// See the examples for how to use this package.
package ht16k33

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math/bits"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// Command map for the HT16K33. Each command byte is tagged in its top nibble;
// the low bits carry the command's payload.
const (
	cmdRAM     byte = 0x00 // display RAM address pointer
	cmdSystem  byte = 0x20 // system setup (oscillator on/off)
	cmdKeys    byte = 0x40 // key data RAM address pointer
	cmdIntFlag byte = 0x60 // INT flag register address pointer
	cmdSetup   byte = 0x80 // display setup (on/off, blink)
	cmdRowInt  byte = 0xA0 // ROW/INT pin configuration
	cmdDimming byte = 0xE0 // dimming set

	displayOn byte = 0x01
)

// DefaultAddr is the datasheet address byte with A2..A0 tied low.
const DefaultAddr = 0xE0

// Blink selects the display blink rate.
type Blink byte

const (
	BlinkOff    Blink = 0x00
	Blink1Hz    Blink = 0x02
	Blink2Hz    Blink = 0x04
	BlinkHalfHz Blink = 0x06
)

// Sprite is a read-only source of row data for DrawSprite. Row returns the
// 16-bit bitmap of row i, bit b lighting column b.
//
// *sprite16.Sprite implements this interface.
type Sprite interface {
	Height() int
	Row(i int) uint16
}

// KeyData is one snapshot of the chip's key data RAM, one word per scanned
// row group. Bits 0-12 of words 0 and 1 report pressed keys; the remaining
// bits and the third word are reserved by the chip and returned as read.
type KeyData [3]uint16

// Pressed reports whether the key at the given matrix position was down when
// the snapshot was taken.
func (k KeyData) Pressed(row, col int) bool {
	if row < 0 || row >= len(k) || col < 0 || col > 12 {
		return false
	}
	return k[row]&(1<<col) != 0
}

// Opts is the configuration for the HT16K33.
type Opts struct {
	// Addr is the address byte as printed in the datasheet,
	// 1110 A2 A1 A0 R/W. The R/W bit is handled by the bus and is dropped:
	// the device answers on Addr >> 1. Zero selects DefaultAddr.
	Addr uint16

	// Orientation of the attached matrices. Each flag can also be toggled
	// at runtime.
	Reversed bool // swap the two 8-wide halves
	VFlip    bool // mirror top/bottom
	HFlip    bool // mirror left/right
}

// Dev is the device handle for the HT16K33.
type Dev struct {
	// Communication
	c conn.Conn // I²C connection

	// Display RAM shadow, one word per row. Bit b of buffer[r] is the
	// pixel at column b, row r.
	buffer [8]uint16

	// Orientation flags, applied when the buffer is serialized.
	reversed bool
	vFlipped bool
	hFlipped bool

	// State
	halted bool
}

var errHalted = errors.New("ht16k33: halted")

// NewI2C creates a new HT16K33 device on the given I²C bus.
//
// opts can be nil to use defaults (address 0xE0, no mirroring). The chip is
// woken up, set to blink off at full brightness, and its display RAM is
// cleared.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	if addr > 0xFF {
		return nil, errors.New("ht16k33: address must be an 8-bit datasheet address byte")
	}

	d := &Dev{
		c:        &i2c.Dev{Bus: b, Addr: addr >> 1},
		reversed: opts.Reversed,
		vFlipped: opts.VFlip,
		hFlipped: opts.HFlip,
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init wakes the chip and puts it in a known display state.
func (d *Dev) init() error {
	if err := d.WakeUp(); err != nil {
		return fmt.Errorf("ht16k33: failed to wake up: %w", err)
	}
	if err := d.SetBlink(BlinkOff); err != nil {
		return err
	}
	if err := d.SetBrightness(15); err != nil {
		return err
	}
	// The chip powers up with undefined RAM; push the zeroed buffer.
	return d.Update()
}

// Clear zeroes the display buffer. The display itself keeps its contents
// until the next Update.
func (d *Dev) Clear() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
}

// SetPixel sets (val=1) or clears (val=0) a single pixel in the buffer.
//
// col is masked to 0-15, row to 0-7 and val to 0-1. Out-of-range coordinates
// wrap instead of failing; hardware-facing callers can lean on the wrap for
// tiling and offset math.
func (d *Dev) SetPixel(col, row, val uint8) {
	col &= 0x0F
	row &= 0x07
	val &= 0x01

	if val == 1 {
		d.buffer[row] |= 1 << col
	} else {
		d.buffer[row] &^= 1 << col
	}
}

// SetRow replaces an entire row of the buffer. row is masked to 0-7.
func (d *Dev) SetRow(row uint8, value uint16) {
	d.buffer[row&0x07] = value
}

// SetColumn sets an entire column of the buffer, bit r of value lighting
// row r. col is masked to 0-15.
func (d *Dev) SetColumn(col, value uint8) {
	for row := uint8(0); row < 8; row++ {
		if value&(1<<row) != 0 {
			d.SetPixel(col, row, 1)
		} else {
			d.SetPixel(col, row, 0)
		}
	}
}

// DrawSprite ORs a sprite into the buffer at the given offset.
//
// Source row i lands on buffer row (i+rowOffset) mod 8; the row value is
// shifted left by colOffset, with bits pushed beyond column 15 discarded.
// The compose is non-destructive: call Clear first for a destructive draw.
func (d *Dev) DrawSprite(s Sprite, colOffset, rowOffset uint8) {
	for i := 0; i < s.Height(); i++ {
		d.buffer[(uint8(i)+rowOffset)&0x07] |= s.Row(i) << colOffset
	}
}

// ResetOrientation restores the default orientation: no mirroring, halves in
// wiring order.
func (d *Dev) ResetOrientation() {
	d.reversed = false
	d.vFlipped = false
	d.hFlipped = false
}

// Reverse toggles the order of the two 8-wide halves. Useful if the panels
// ended up wired backwards.
func (d *Dev) Reverse() {
	d.reversed = !d.reversed
}

// FlipVertical toggles top/bottom mirroring.
func (d *Dev) FlipVertical() {
	d.vFlipped = !d.vFlipped
}

// FlipHorizontal toggles left/right mirroring.
func (d *Dev) FlipHorizontal() {
	d.hFlipped = !d.hFlipped
}

// appendRow serializes one display row into its two wire bytes.
//
// Vertical flip picks which buffer row is read, horizontal flip reverses the
// bit pattern of that row, and half-reversal swaps the two bytes of the
// result. The order is fixed by the wiring of dual 8x8 panels.
func (d *Dev) appendRow(frame []byte, row uint8) []byte {
	if d.vFlipped {
		row = 7 - row
	}

	out := d.buffer[row]
	if d.hFlipped {
		out = bits.Reverse16(out)
	}

	if d.reversed {
		return append(frame, byte(out>>8), byte(out))
	}
	return append(frame, byte(out), byte(out>>8))
}

// Update writes the buffer to the display RAM.
//
// All 8 rows go out in a single transaction so the chip's auto-incrementing
// RAM pointer covers the whole frame.
func (d *Dev) Update() error {
	if d.halted {
		return errHalted
	}

	frame := make([]byte, 1, 17)
	frame[0] = cmdRAM
	for row := uint8(0); row < 8; row++ {
		frame = d.appendRow(frame, row)
	}
	return d.c.Tx(frame, nil)
}

// SetBrightness sets the display duty cycle. brightness is masked to 0-15.
func (d *Dev) SetBrightness(brightness uint8) error {
	if d.halted {
		return errHalted
	}
	return d.c.Tx([]byte{cmdDimming | brightness&0x0F}, nil)
}

// SetBlink sets the blink rate and leaves the display enabled.
func (d *Dev) SetBlink(b Blink) error {
	if d.halted {
		return errHalted
	}
	return d.c.Tx([]byte{cmdSetup | displayOn | byte(b)&0x06}, nil)
}

// SetRowIntPin configures the shared ROW15/INT pin.
//
// With rowInt true the pin acts as keyscan interrupt output, active high when
// activeHigh is set. With rowInt false the pin drives LED row 15 and
// activeHigh is ignored.
func (d *Dev) SetRowIntPin(rowInt, activeHigh bool) error {
	if d.halted {
		return errHalted
	}
	var ri, act byte
	if rowInt {
		ri = 1
	}
	if activeHigh {
		act = 1
	}
	return d.c.Tx([]byte{cmdRowInt | (act&ri)<<1 | ri}, nil)
}

// Sleep turns the system oscillator off. The chip keeps scanning keys at a
// reduced rate and can be restarted with WakeUp; the datasheet strongly
// recommends reading key data before sleeping.
func (d *Dev) Sleep() error {
	if d.halted {
		return errHalted
	}
	return d.c.Tx([]byte{cmdSystem &^ 0x01}, nil)
}

// WakeUp turns the system oscillator back on. Allow at least 1ms after waking
// before issuing further commands or reads.
func (d *Dev) WakeUp() error {
	if err := d.c.Tx([]byte{cmdSystem | 0x01}, nil); err != nil {
		return err
	}
	d.halted = false
	return nil
}

// ReadKeys reads the chip's key data RAM.
//
// Reading clears the chip-side key latch and the INT flag, so poll
// KeyInterrupt first if you need to know whether the data is fresh.
func (d *Dev) ReadKeys() (KeyData, error) {
	var keys KeyData
	if d.halted {
		return keys, errHalted
	}

	// Point the chip at the key data registers, then read them all.
	if err := d.c.Tx([]byte{cmdKeys}, nil); err != nil {
		return keys, fmt.Errorf("ht16k33: failed to select key data: %w", err)
	}
	var raw [6]byte
	if err := d.c.Tx(nil, raw[:]); err != nil {
		return keys, fmt.Errorf("ht16k33: failed to read key data: %w", err)
	}

	for i := range keys {
		keys[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}
	return keys, nil
}

// KeyInterrupt reports whether a key press has been latched since the last
// key data read.
func (d *Dev) KeyInterrupt() (bool, error) {
	if d.halted {
		return false, errHalted
	}

	if err := d.c.Tx([]byte{cmdIntFlag}, nil); err != nil {
		return false, fmt.Errorf("ht16k33: failed to select INT flag: %w", err)
	}
	var flag [1]byte
	if err := d.c.Tx(nil, flag[:]); err != nil {
		return false, fmt.Errorf("ht16k33: failed to read INT flag: %w", err)
	}
	return flag[0] > 0, nil
}

// Bounds returns the addressable pixel area of the display buffer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, 16, 8)
}

// Halt puts the chip to sleep and rejects further commands until WakeUp is
// called. It implements conn.Resource.
func (d *Dev) Halt() error {
	d.halted = true
	return d.c.Tx([]byte{cmdSystem &^ 0x01}, nil)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return "ht16k33.Dev{16x8}"
}

var _ conn.Resource = &Dev{}
