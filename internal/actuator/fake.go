package actuator

import (
	"time"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

// FakeDriver records drive commands for test assertions.
// Like the logic it serves, it is not safe for concurrent use.
type FakeDriver struct {
	// drives holds the current commanded state per channel.
	drives map[logic.Channel]Drive

	// History contains every command issued, in order, including
	// re-issues of the current state.
	History []HistoryEntry

	// Closed tracks if Close was called.
	Closed bool
}

// HistoryEntry is one recorded command.
type HistoryEntry struct {
	Channel logic.Channel
	Drive   Drive
}

// NewFakeDriver creates a FakeDriver with both channels off.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{
		drives: map[logic.Channel]Drive{
			logic.ChannelHeat: {State: DriveOff},
			logic.ChannelCool: {State: DriveOff},
		},
	}
}

// Drive returns the current commanded state of a channel.
func (f *FakeDriver) Drive(ch logic.Channel) Drive {
	return f.drives[ch]
}

// SetOff records an off command.
func (f *FakeDriver) SetOff(ch logic.Channel) {
	f.record(ch, Drive{State: DriveOff})
}

// SetSteadyOn records a steady-on command.
func (f *FakeDriver) SetSteadyOn(ch logic.Channel) {
	f.record(ch, Drive{State: DriveSteady})
}

// SetPulsing records a pulsing command with the given fade times.
func (f *FakeDriver) SetPulsing(ch logic.Channel, fadeIn, fadeOut time.Duration) {
	f.record(ch, Drive{State: DrivePulsing, FadeIn: fadeIn, FadeOut: fadeOut})
}

// Close marks the driver as closed and turns both channels off.
func (f *FakeDriver) Close() error {
	f.SetOff(logic.ChannelHeat)
	f.SetOff(logic.ChannelCool)
	f.Closed = true
	return nil
}

// Reset clears recorded history and turns both channels off.
func (f *FakeDriver) Reset() {
	f.drives[logic.ChannelHeat] = Drive{State: DriveOff}
	f.drives[logic.ChannelCool] = Drive{State: DriveOff}
	f.History = nil
	f.Closed = false
}

func (f *FakeDriver) record(ch logic.Channel, d Drive) {
	f.drives[ch] = d
	f.History = append(f.History, HistoryEntry{Channel: ch, Drive: d})
}
