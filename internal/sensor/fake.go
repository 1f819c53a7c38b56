package sensor

import "errors"

// FakeReader is a test double that returns scripted readings.
type FakeReader struct {
	// Readings contains scripted values to return, in °C.
	// Each call to ReadCelsius consumes the next reading; when exhausted,
	// the last reading repeats.
	Readings []Reading

	// index tracks current position in Readings
	index int

	// Closed tracks if Close was called
	Closed bool
}

// Reading is one scripted sensor result.
type Reading struct {
	Celsius float64
	Err     error
}

// NewFakeReader creates a FakeReader with the given readings.
func NewFakeReader(readings []Reading) *FakeReader {
	return &FakeReader{Readings: readings}
}

// CelsiusForF converts a Fahrenheit value to the Celsius the sensor
// would have to report for Cached to produce it. Test helper.
func CelsiusForF(f float64) float64 {
	return (f - 32) * 5 / 9
}

// ReadCelsius returns the next scripted reading.
func (f *FakeReader) ReadCelsius() (float64, error) {
	if len(f.Readings) == 0 {
		return 0, errors.New("no readings configured")
	}

	r := f.Readings[f.index]
	if f.index < len(f.Readings)-1 {
		f.index++
	}
	return r.Celsius, r.Err
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of readings.
func (f *FakeReader) Reset() {
	f.index = 0
	f.Closed = false
}
