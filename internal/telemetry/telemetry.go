// Package telemetry formats and writes the periodic serial status line.
// The real implementation writes to a serial port. The fake records
// lines for tests.
package telemetry

import (
	"fmt"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

// Writer is the serial telemetry collaborator. Writes are fire-and-forget;
// the caller logs failures and continues (telemetry is advisory, not
// control-critical).
type Writer interface {
	// Write sends one encoded telemetry line.
	Write(line []byte) error

	// Close closes the port.
	Close() error
}

// Interval is the telemetry cadence in ticks (≈ seconds).
const Interval = 30

// FormatLine encodes one telemetry line:
//
//	<mode>,<temp>,<setpoint>\n
//
// The temperature carries exactly one fractional digit. This rounds,
// unlike the actuator decision which floors — both behaviors are kept
// deliberately distinct.
func FormatLine(mode logic.Mode, tempF float64, setPoint int) []byte {
	return []byte(fmt.Sprintf("%s,%.1f,%d\n", mode, tempF, setPoint))
}
