// Package logic contains pure business logic for the thermostat.
// This package has NO external dependencies (no GPIO, I2C, serial, or
// time.Sleep). Actuator hardware is reached only through the Actuators
// interface, so the whole package is testable with fakes.
package logic

import (
	"errors"
	"time"
)

// Mode is the operating mode of the thermostat. The string values are the
// wire names used in telemetry.
type Mode string

const (
	ModeOff  Mode = "off"
	ModeHeat Mode = "heat"
	ModeCool Mode = "cool"
)

// Channel identifies an indicator actuator.
type Channel string

const (
	ChannelHeat Channel = "heat"
	ChannelCool Channel = "cool"
)

// DefaultSetPoint is the target temperature on startup, in °F.
const DefaultSetPoint = 72

// PulsePeriod is the fade-in and fade-out time of a pulsing actuator.
const PulsePeriod = 1 * time.Second

// ErrTransitionNotAllowed is reserved for future guarded transitions.
// The current ring (off→heat→cool→off) has no guards, so Cycle never
// returns it.
var ErrTransitionNotAllowed = errors.New("logic: transition not allowed")

// Actuators drives the heat and cool indicators. Implementations must
// tolerate repeated identical commands (the controller re-issues drive
// state every tick while heating or cooling).
type Actuators interface {
	// SetOff turns the channel fully off.
	SetOff(ch Channel)

	// SetSteadyOn drives the channel at full level.
	SetSteadyOn(ch Channel)

	// SetPulsing drives the channel with a continuous triangular fade.
	SetPulsing(ch Channel, fadeIn, fadeOut time.Duration)
}

// EventCounts tracks the number of each input event since startup.
type EventCounts struct {
	Cycles    int
	Increases int
	Decreases int
}
