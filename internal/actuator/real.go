//go:build linux

package actuator

import (
	"fmt"
	"sync"
	"time"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

const (
	// pwmCycle is the PWM cycle length; duty runs 0..pwmCycle.
	pwmCycle = 32

	// pwmFreq is the PWM clock frequency, giving pwmFreq/pwmCycle = 2 kHz
	// on the LED, well above visible flicker.
	pwmFreq = 64000

	// pulseStep is how often the pulser goroutine updates the duty cycle.
	pulseStep = 50 * time.Millisecond
)

// RealDriver drives LEDs through the Pi's hardware PWM channels.
type RealDriver struct {
	mu       sync.Mutex
	channels map[logic.Channel]*pwmChannel
}

type pwmChannel struct {
	pin     rpio.Pin
	current Drive

	// pulser lifecycle; nil when not pulsing
	stop chan struct{}
	done chan struct{}
}

// NewRealDriver maps the heat and cool channels onto the given BCM pins
// and configures them for PWM. Both channels start off.
func NewRealDriver(pinHeat, pinCool int) (*RealDriver, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open gpio memory range: %w", err)
	}

	d := &RealDriver{
		channels: map[logic.Channel]*pwmChannel{
			logic.ChannelHeat: {pin: rpio.Pin(pinHeat)},
			logic.ChannelCool: {pin: rpio.Pin(pinCool)},
		},
	}
	for _, ch := range d.channels {
		ch.pin.Pwm()
		ch.pin.Freq(pwmFreq)
		ch.pin.DutyCycle(0, pwmCycle)
		ch.current = Drive{State: DriveOff}
	}
	return d, nil
}

// SetOff turns the channel fully off.
func (d *RealDriver) SetOff(ch logic.Channel) {
	d.apply(ch, Drive{State: DriveOff})
}

// SetSteadyOn drives the channel at full duty.
func (d *RealDriver) SetSteadyOn(ch logic.Channel) {
	d.apply(ch, Drive{State: DriveSteady})
}

// SetPulsing starts a continuous triangular fade on the channel.
func (d *RealDriver) SetPulsing(ch logic.Channel, fadeIn, fadeOut time.Duration) {
	d.apply(ch, Drive{State: DrivePulsing, FadeIn: fadeIn, FadeOut: fadeOut})
}

// apply issues a drive command. Identical commands are no-ops, so the
// control loop can re-issue state every tick without restarting fades.
func (d *RealDriver) apply(name logic.Channel, drive Drive) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ch, ok := d.channels[name]
	if !ok || ch.current == drive {
		return
	}
	d.stopPulser(ch)
	ch.current = drive

	switch drive.State {
	case DriveOff:
		ch.pin.DutyCycle(0, pwmCycle)
	case DriveSteady:
		ch.pin.DutyCycle(pwmCycle, pwmCycle)
	case DrivePulsing:
		ch.stop = make(chan struct{})
		ch.done = make(chan struct{})
		go pulse(ch.pin, drive.FadeIn, drive.FadeOut, ch.stop, ch.done)
	}
}

// stopPulser cancels a running pulser and waits for it to exit.
// Caller holds d.mu.
func (d *RealDriver) stopPulser(ch *pwmChannel) {
	if ch.stop == nil {
		return
	}
	close(ch.stop)
	<-ch.done
	ch.stop = nil
	ch.done = nil
}

// Close turns both channels off and unmaps the GPIO range.
func (d *RealDriver) Close() error {
	d.mu.Lock()
	for _, ch := range d.channels {
		d.stopPulser(ch)
		ch.pin.DutyCycle(0, pwmCycle)
		ch.current = Drive{State: DriveOff}
	}
	d.mu.Unlock()
	return rpio.Close()
}

// pulse runs a triangular duty ramp until stop is closed. The level is
// computed from elapsed wall time rather than accumulated steps, so a
// delayed tick cannot skew the fade shape.
func pulse(pin rpio.Pin, fadeIn, fadeOut time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	if fadeIn <= 0 {
		fadeIn = time.Millisecond
	}
	if fadeOut <= 0 {
		fadeOut = time.Millisecond
	}
	period := fadeIn + fadeOut

	ticker := time.NewTicker(pulseStep)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-stop:
			pin.DutyCycle(0, pwmCycle)
			return
		case now := <-ticker.C:
			e := now.Sub(start) % period
			var level float64
			if e < fadeIn {
				level = float64(e) / float64(fadeIn)
			} else {
				level = 1 - float64(e-fadeIn)/float64(fadeOut)
			}
			pin.DutyCycle(uint32(level*pwmCycle+0.5), pwmCycle)
		}
	}
}
