// Package ht16k33 controls a Holtek HT16K33 LED driver and keyscan IC via I²C.
//
// The HT16K33 drives a multiplexed LED matrix of up to 16x8 dots and scans a
// key matrix of up to 13x3 keys. This driver targets the common wiring of two
// 8x8 LED panels presented as one 16x8 display, with optional mirroring for
// panels that ended up mounted backwards or upside down.
//
// # Chip Characteristics
//
// - 16x8 bit display RAM, written in one auto-incrementing burst
// - 16 brightness levels (duty cycle dimming)
// - Hardware blink at 0.5Hz, 1Hz or 2Hz
// - 13x3 key matrix scanner with an interrupt flag and optional INT pin
// - Standby mode (oscillator off) for low-power keyscan-only use
//
// # Hardware Connection
//
// Connect the HT16K33 to your system via I²C:
//
//	Chip Pin → System Pin
//	VSS      → GND
//	VDD      → 3.3V or 5V
//	SCL      → I²C Clock
//	SDA      → I²C Data
//
// The I²C address is set by the A2-A0 pins (see the datasheet); with all
// three low the chip answers on 0x70. Addresses in this package are given as
// the raw datasheet byte (0xE0 for 0x70): the read/write bit is dropped and
// the value is shifted right once.
//
// # Basic Usage
//
// Example of creating and driving the display:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/jonpearse/ht16k33"
//		"github.com/jonpearse/ht16k33/sprite16"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open the I²C bus
//		bus, err := i2creg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer bus.Close()
//
//		// Create the device
//		dev, err := ht16k33.NewI2C(bus, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		// Draw into the buffer
//		dev.SetRow(0, 0xFFFF)
//		dev.SetPixel(8, 4, 1)
//		dev.DrawSprite(sprite16.FromRows(0x0F0F, 0xF0F0), 0, 2)
//
//		// Push the buffer to the display
//		if err := dev.Update(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Buffer Model
//
// All drawing operations mutate an in-memory 8-row buffer of 16-bit row
// values; nothing reaches the chip until Update is called. Update always
// writes the full frame in a single transaction so the chip's internal RAM
// pointer stays in step.
//
// Coordinates are masked, not bounds-checked: columns wrap at 16 and rows at
// 8. This is deliberate wraparound behavior that tiling and offset math can
// rely on.
//
// # Orientation
//
// Three independent flags adjust the frame for the panel wiring, applied only
// when the buffer is serialized:
//
//	dev.Reverse()        // swap the two 8-wide halves
//	dev.FlipVertical()   // mirror top/bottom
//	dev.FlipHorizontal() // mirror left/right
//
// Any combination of the three is valid. They can also be set up front via
// Opts.
//
// # Keyscan
//
// The chip scans its key matrix continuously and latches presses until the
// key data is read:
//
//	if pending, _ := dev.KeyInterrupt(); pending {
//		keys, err := dev.ReadKeys()
//		if err != nil {
//			log.Fatal(err)
//		}
//		if keys.Pressed(0, 3) {
//			// key at row 0, column 3 was down
//		}
//	}
//
// Note that reading key data clears the chip's latch and interrupt flag.
//
// # Power
//
// Sleep turns the system oscillator off; the chip keeps scanning keys at a
// reduced rate, which cuts power draw considerably in keyscan-only setups.
// WakeUp restarts the oscillator. The driver does not cache brightness or
// blink state, so reapply them if the chip lost power in between.
//
// # Concurrency
//
// The driver holds no locks. Serialize all calls to one Dev behind a single
// owner; interleaving transactions to the same chip corrupts its register
// pointers.
//
// # Datasheet
//
// https://www.holtek.com/webapi/116711/HT16K33Av102.pdf
package ht16k33
