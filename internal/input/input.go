// Package input delivers debounced button press events with hardware
// abstraction. The real implementation uses Linux GPIO character device
// edge events. The fake implementation allows testing without hardware.
package input

import "time"

// Button identifies one of the three physical buttons.
type Button string

const (
	ButtonToggle   Button = "toggle"
	ButtonIncrease Button = "increase"
	ButtonDecrease Button = "decrease"
)

// Event is a single debounced button press.
type Event struct {
	Button Button
	Time   time.Time
}

// Source delivers button events.
type Source interface {
	// Events returns the channel press events are delivered on.
	// The channel is closed by Close.
	Events() <-chan Event

	// Close releases GPIO resources and closes the event channel.
	Close() error
}

// Debounce is the minimum spacing between delivered presses. The
// hardware collaborator guarantees this; the kernel debounce filter
// enforces it for the real source.
const Debounce = 200 * time.Millisecond

// Pin defaults (BCM numbering) for the reference board.
const (
	DefaultPinToggle   = 24
	DefaultPinIncrease = 25
	DefaultPinDecrease = 12
)
