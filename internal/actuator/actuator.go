// Package actuator drives the heat and cool indicator LEDs.
// The real implementation uses hardware PWM via go-rpio.
// The fake implementation records drive commands for tests.
package actuator

import (
	"time"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

// Driver is the actuator collaborator consumed by the control logic,
// plus resource cleanup.
type Driver interface {
	logic.Actuators

	// Close forces both channels off and releases hardware resources.
	Close() error
}

// Drive states reported by the fake and used internally by the real driver.
const (
	DriveOff     = "off"
	DriveSteady  = "steady"
	DrivePulsing = "pulsing"
)

// Drive is the commanded state of one channel.
type Drive struct {
	State   string
	FadeIn  time.Duration
	FadeOut time.Duration
}

// Pin defaults (BCM numbering). Both must be hardware PWM capable
// (12, 13, 18 or 19 on a Raspberry Pi).
const (
	DefaultPinHeat = 18
	DefaultPinCool = 13
)
