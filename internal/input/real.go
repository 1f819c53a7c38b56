//go:build linux

package input

import (
	"fmt"
	"log"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// RealSource reads buttons from actual hardware using Linux GPIO
// character device edge events.
type RealSource struct {
	chip   *gpiocdev.Chip
	lines  []*gpiocdev.Line
	events chan Event
}

// NewRealSource requests the three button lines as debounced
// falling-edge inputs (buttons wired to ground, pull-up enabled).
func NewRealSource(pinToggle, pinIncrease, pinDecrease int) (*RealSource, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	s := &RealSource{
		chip: chip,
		// Small buffer: presses are at least Debounce apart, so the
		// loop has ample time to drain.
		events: make(chan Event, 8),
	}

	pins := []struct {
		pin    int
		button Button
	}{
		{pinToggle, ButtonToggle},
		{pinIncrease, ButtonIncrease},
		{pinDecrease, ButtonDecrease},
	}

	for _, p := range pins {
		button := p.button
		line, err := chip.RequestLine(p.pin,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp,
			gpiocdev.WithFallingEdge,
			gpiocdev.WithDebounce(Debounce),
			gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
				s.deliver(button)
			}))
		if err != nil {
			s.closeLines()
			chip.Close()
			return nil, fmt.Errorf("request %s pin %d: %w", p.button, p.pin, err)
		}
		s.lines = append(s.lines, line)
	}

	return s, nil
}

// deliver pushes an event without blocking the gpiocdev handler
// goroutine. A full channel means the consumer stalled for seconds;
// dropping the press is the least bad option.
func (s *RealSource) deliver(b Button) {
	select {
	case s.events <- Event{Button: b, Time: time.Now()}:
	default:
		log.Printf("input: event channel full, dropping %s press", b)
	}
}

// Events returns the press event channel.
func (s *RealSource) Events() <-chan Event {
	return s.events
}

// Close releases GPIO resources and closes the event channel.
func (s *RealSource) Close() error {
	s.closeLines()
	err := s.chip.Close()
	close(s.events)
	if err != nil {
		return fmt.Errorf("close chip: %w", err)
	}
	return nil
}

func (s *RealSource) closeLines() {
	for _, line := range s.lines {
		line.Close()
	}
	s.lines = nil
}
