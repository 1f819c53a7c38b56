package input

import "time"

// FakeSource delivers scripted button presses for tests.
type FakeSource struct {
	events chan Event

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeSource creates a FakeSource. The buffer is large enough that
// tests can queue presses without a consumer running.
func NewFakeSource() *FakeSource {
	return &FakeSource{events: make(chan Event, 64)}
}

// Press queues a press of the given button.
func (f *FakeSource) Press(b Button) {
	f.events <- Event{Button: b, Time: time.Now()}
}

// PressAt queues a press with an explicit timestamp.
func (f *FakeSource) PressAt(b Button, t time.Time) {
	f.events <- Event{Button: b, Time: t}
}

// Events returns the press event channel.
func (f *FakeSource) Events() <-chan Event {
	return f.events
}

// Close closes the event channel.
func (f *FakeSource) Close() error {
	if !f.Closed {
		close(f.events)
		f.Closed = true
	}
	return nil
}
