package telemetry

// FakeWriter records telemetry lines for test assertions.
type FakeWriter struct {
	// Lines contains every written line.
	Lines [][]byte

	// WriteError, if set, will be returned by Write.
	WriteError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeWriter creates a FakeWriter.
func NewFakeWriter() *FakeWriter {
	return &FakeWriter{}
}

// Write records the line.
func (f *FakeWriter) Write(line []byte) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	// Copy: callers may reuse the buffer.
	f.Lines = append(f.Lines, append([]byte(nil), line...))
	return nil
}

// Close marks the writer as closed.
func (f *FakeWriter) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded lines.
func (f *FakeWriter) Reset() {
	f.Lines = nil
	f.WriteError = nil
	f.Closed = false
}
