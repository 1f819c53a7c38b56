// Package sensor provides ambient temperature readings with hardware
// abstraction. The real implementation talks to an AHT20 over I2C.
// The fake implementation allows testing without hardware.
package sensor

import "log"

// Reader reads the raw sensor.
type Reader interface {
	// ReadCelsius returns the ambient temperature in °C, or an error on
	// transient bus failure. Reads are bounded and fast (local bus).
	ReadCelsius() (float64, error)

	// Close releases sensor resources.
	Close() error
}

// DefaultLastF is the fallback reading before the first successful
// sensor read, in °F.
const DefaultLastF = 72.0

// Cached wraps a Reader and degrades to the last known good value on
// failure. It never reports an error to callers: a failed read is logged
// and the cache is returned unchanged.
//
// Not safe for concurrent use. The event loop is the only caller.
type Cached struct {
	reader Reader
	lastF  float64
}

// NewCached creates a Cached source seeded with DefaultLastF.
func NewCached(reader Reader) *Cached {
	return &Cached{reader: reader, lastF: DefaultLastF}
}

// ReadFahrenheit attempts a live read, converts to °F and updates the
// cache. On failure it returns the previous cached value.
func (c *Cached) ReadFahrenheit() float64 {
	celsius, err := c.reader.ReadCelsius()
	if err != nil {
		log.Printf("sensor read error, using last known temperature: %v", err)
		return c.lastF
	}
	c.lastF = celsius*9/5 + 32
	return c.lastF
}

// Last returns the cached value without touching the hardware.
func (c *Cached) Last() float64 { return c.lastF }
