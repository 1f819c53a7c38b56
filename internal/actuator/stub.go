//go:build !linux

package actuator

import (
	"errors"
	"time"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

// RealDriver is not available on non-Linux platforms.
type RealDriver struct{}

// NewRealDriver returns an error on non-Linux platforms.
func NewRealDriver(pinHeat, pinCool int) (*RealDriver, error) {
	return nil, errors.New("actuator: not supported on this platform (requires Linux)")
}

// SetOff is not implemented on non-Linux platforms.
func (d *RealDriver) SetOff(ch logic.Channel) {}

// SetSteadyOn is not implemented on non-Linux platforms.
func (d *RealDriver) SetSteadyOn(ch logic.Channel) {}

// SetPulsing is not implemented on non-Linux platforms.
func (d *RealDriver) SetPulsing(ch logic.Channel, fadeIn, fadeOut time.Duration) {}

// Close is not implemented on non-Linux platforms.
func (d *RealDriver) Close() error { return nil }
