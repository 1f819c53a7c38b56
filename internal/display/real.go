package display

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// DefaultAddr is the usual PCF8574 backpack address (0x3F on some
// boards — configurable).
const DefaultAddr = 0x27

// PCF8574 bit assignments for the common HD44780 backpack.
const (
	lcdRS        = 0x01
	lcdEnable    = 0x04
	lcdBacklight = 0x08
)

// HD44780 commands.
const (
	cmdClear      = 0x01
	cmdEntryMode  = 0x06 // cursor moves right, no shift
	cmdDisplayOn  = 0x0C // display on, cursor off, blink off
	cmdFunc4Bit   = 0x28 // 4-bit, 2 lines, 5x8 font
	cmdLine1 byte = 0x80
	cmdLine2 byte = 0xC0
)

// RealDisplay drives an HD44780 16x2 LCD over an I2C expander.
type RealDisplay struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

// NewRealDisplay opens the I2C bus, initializes the controller in 4-bit
// mode and clears the screen.
func NewRealDisplay(busName string, addr uint16) (*RealDisplay, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}

	d := &RealDisplay{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: addr},
	}
	if err := d.init(); err != nil {
		bus.Close()
		return nil, fmt.Errorf("init lcd: %w", err)
	}
	return d, nil
}

// init runs the standard HD44780 4-bit initialization sequence.
func (d *RealDisplay) init() error {
	time.Sleep(50 * time.Millisecond)
	// Three 8-bit function-set probes, then switch to 4-bit.
	for _, nibble := range []byte{0x30, 0x30, 0x30, 0x20} {
		if err := d.strobe(nibble); err != nil {
			return err
		}
		time.Sleep(5 * time.Millisecond)
	}
	for _, cmd := range []byte{cmdFunc4Bit, cmdDisplayOn, cmdEntryMode} {
		if err := d.command(cmd); err != nil {
			return err
		}
	}
	return d.Clear()
}

// Update replaces both lines, padding to the display width so stale
// characters from longer previous lines are overwritten.
func (d *RealDisplay) Update(line1, line2 string) error {
	if err := d.writeLine(cmdLine1, line1); err != nil {
		return fmt.Errorf("write line 1: %w", err)
	}
	if err := d.writeLine(cmdLine2, line2); err != nil {
		return fmt.Errorf("write line 2: %w", err)
	}
	return nil
}

// Clear blanks the display.
func (d *RealDisplay) Clear() error {
	if err := d.command(cmdClear); err != nil {
		return err
	}
	// Clear is the slowest HD44780 command.
	time.Sleep(2 * time.Millisecond)
	return nil
}

// Close clears the display and releases the I2C bus.
func (d *RealDisplay) Close() error {
	if err := d.Clear(); err != nil {
		d.bus.Close()
		return err
	}
	return d.bus.Close()
}

func (d *RealDisplay) writeLine(addr byte, text string) error {
	if err := d.command(addr); err != nil {
		return err
	}
	if len(text) > Width {
		text = text[:Width]
	}
	for len(text) < Width {
		text += " "
	}
	for i := 0; i < len(text); i++ {
		if err := d.writeByte(text[i], lcdRS); err != nil {
			return err
		}
	}
	return nil
}

func (d *RealDisplay) command(b byte) error {
	return d.writeByte(b, 0)
}

// writeByte sends one byte as two 4-bit transfers.
func (d *RealDisplay) writeByte(b, mode byte) error {
	if err := d.strobe(b&0xF0 | mode); err != nil {
		return err
	}
	return d.strobe(b<<4&0xF0 | mode)
}

// strobe latches a nibble by toggling the enable line.
func (d *RealDisplay) strobe(data byte) error {
	data |= lcdBacklight
	for _, out := range []byte{data | lcdEnable, data} {
		if err := d.dev.Tx([]byte{out}, nil); err != nil {
			return err
		}
	}
	// HD44780 needs >37us to settle after a latch.
	time.Sleep(50 * time.Microsecond)
	return nil
}
