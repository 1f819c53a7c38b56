// Package display drives the 16x2 status LCD with hardware abstraction.
// The real implementation talks to an HD44780 behind a PCF8574 I2C
// backpack. The fake implementation records updates for tests.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

// Display is the two-line display collaborator.
type Display interface {
	// Update replaces both lines.
	Update(line1, line2 string) error

	// Clear blanks the display.
	Clear() error

	// Close clears the display and releases resources.
	Close() error
}

// Width is the character width of one line.
const Width = 16

// AlternateTicks is how many ticks line 2 holds one view before
// flipping between the mode/setpoint and temperature representations.
const AlternateTicks = 5

// Lines formats the two display lines for one tick. Line 1 is the
// date/time label; line 2 is either the temperature view or the
// mode/setpoint view depending on showTemp.
func Lines(now time.Time, tempF float64, mode logic.Mode, setPoint int, showTemp bool) (string, string) {
	line1 := now.Format("01/02 15:04:05")

	var line2 string
	if showTemp {
		line2 = fmt.Sprintf("Temp:%.1fF", tempF)
	} else {
		line2 = fmt.Sprintf("%s %dF", strings.ToUpper(string(mode)), setPoint)
	}
	return line1, line2
}
