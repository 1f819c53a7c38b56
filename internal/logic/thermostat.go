package logic

import "math"

// Thermostat owns the mode ring and the setpoint, and derives actuator
// drive from them. It is NOT safe for concurrent use: the event loop is
// the single owner and feeds it ticks and button events in arrival order.
type Thermostat struct {
	mode      Mode
	setPoint  int
	actuators Actuators
	counts    EventCounts
}

// NewThermostat creates a thermostat in mode off with the default
// setpoint. Both actuator channels are forced off, matching the
// state-machine entry action for off.
func NewThermostat(actuators Actuators) *Thermostat {
	t := &Thermostat{
		mode:      ModeOff,
		setPoint:  DefaultSetPoint,
		actuators: actuators,
	}
	t.enterOff()
	return t
}

// Mode returns the current operating mode.
func (t *Thermostat) Mode() Mode { return t.mode }

// SetPoint returns the target temperature in °F.
func (t *Thermostat) SetPoint() int { return t.setPoint }

// Counts returns the input event counts since startup.
func (t *Thermostat) Counts() EventCounts { return t.counts }

// Cycle advances the mode ring: off→heat→cool→off. The exit action of
// the old mode runs before the entry action of the new one. tempF is the
// current temperature, needed by the heat/cool entry actions.
//
// The error return is reserved for future guarded transitions; today the
// ring is unconditional and Cycle always returns nil.
func (t *Thermostat) Cycle(tempF float64) error {
	switch t.mode {
	case ModeOff:
		t.mode = ModeHeat
		t.ControlActuators(tempF)
	case ModeHeat:
		t.actuators.SetOff(ChannelHeat)
		t.mode = ModeCool
		t.ControlActuators(tempF)
	case ModeCool:
		t.actuators.SetOff(ChannelCool)
		t.mode = ModeOff
		t.enterOff()
	}
	t.counts.Cycles++
	return nil
}

// IncreaseSetPoint raises the target temperature by one degree.
// No upper bound is defined.
func (t *Thermostat) IncreaseSetPoint() int {
	t.setPoint++
	t.counts.Increases++
	return t.setPoint
}

// DecreaseSetPoint lowers the target temperature by one degree.
// No lower bound is defined.
func (t *Thermostat) DecreaseSetPoint() int {
	t.setPoint--
	t.counts.Decreases++
	return t.setPoint
}

// ControlActuators derives the drive command for the active channel from
// (mode, floor(tempF), setpoint) and issues it. The temperature is
// floored, not rounded, so 71.9°F still counts as below a 72°F setpoint.
//
// In heat mode the cool channel is left alone (and vice versa): the mode
// ring's exit action already turned it off. Safe to call repeatedly.
func (t *Thermostat) ControlActuators(tempF float64) {
	temp := int(math.Floor(tempF))
	switch t.mode {
	case ModeHeat:
		if temp < t.setPoint {
			t.actuators.SetPulsing(ChannelHeat, PulsePeriod, PulsePeriod)
		} else {
			t.actuators.SetSteadyOn(ChannelHeat)
		}
	case ModeCool:
		if temp > t.setPoint {
			t.actuators.SetPulsing(ChannelCool, PulsePeriod, PulsePeriod)
		} else {
			t.actuators.SetSteadyOn(ChannelCool)
		}
	case ModeOff:
		t.enterOff()
	}
}

// Shutdown forces both actuator channels off without touching the mode.
// Called once when the process is terminating.
func (t *Thermostat) Shutdown() {
	t.actuators.SetOff(ChannelHeat)
	t.actuators.SetOff(ChannelCool)
}

func (t *Thermostat) enterOff() {
	t.actuators.SetOff(ChannelHeat)
	t.actuators.SetOff(ChannelCool)
}
