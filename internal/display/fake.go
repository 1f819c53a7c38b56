package display

// FakeDisplay records display updates for test assertions.
type FakeDisplay struct {
	// Line1 and Line2 hold the most recent update.
	Line1 string
	Line2 string

	// Updates contains every Update call, in order.
	Updates [][2]string

	// Cleared counts Clear calls.
	Cleared int

	// Closed tracks if Close was called.
	Closed bool

	// UpdateError, if set, will be returned by Update.
	UpdateError error
}

// NewFakeDisplay creates a FakeDisplay.
func NewFakeDisplay() *FakeDisplay {
	return &FakeDisplay{}
}

// Update records both lines.
func (f *FakeDisplay) Update(line1, line2 string) error {
	if f.UpdateError != nil {
		return f.UpdateError
	}
	f.Line1 = line1
	f.Line2 = line2
	f.Updates = append(f.Updates, [2]string{line1, line2})
	return nil
}

// Clear blanks the recorded lines.
func (f *FakeDisplay) Clear() error {
	f.Line1 = ""
	f.Line2 = ""
	f.Cleared++
	return nil
}

// Close marks the display as closed.
func (f *FakeDisplay) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded state.
func (f *FakeDisplay) Reset() {
	*f = FakeDisplay{}
}
