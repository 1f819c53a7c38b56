package sensor

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// AHT20Addr is the fixed I2C address of the AHT20.
const AHT20Addr = 0x38

const (
	aht20StatusBusy       = 0x80
	aht20StatusCalibrated = 0x08
	aht20MeasureDelay     = 80 * time.Millisecond
)

// RealReader reads an AHT20 temperature/humidity sensor over I2C.
type RealReader struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

// NewRealReader opens the given I2C bus (e.g. "1" on a Raspberry Pi) and
// initializes the AHT20.
func NewRealReader(busName string) (*RealReader, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}

	r := &RealReader{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: AHT20Addr},
	}
	if err := r.initSensor(); err != nil {
		bus.Close()
		return nil, fmt.Errorf("init aht20: %w", err)
	}
	return r, nil
}

// initSensor sends the calibration command if the sensor reports
// uncalibrated (typical after power-on).
func (r *RealReader) initSensor() error {
	status := make([]byte, 1)
	if err := r.dev.Tx([]byte{0x71}, status); err != nil {
		return fmt.Errorf("read status: %w", err)
	}
	if status[0]&aht20StatusCalibrated != 0 {
		return nil
	}
	if err := r.dev.Tx([]byte{0xBE, 0x08, 0x00}, nil); err != nil {
		return fmt.Errorf("send init: %w", err)
	}
	time.Sleep(10 * time.Millisecond)
	return nil
}

// ReadCelsius triggers a measurement and returns the temperature.
// A full cycle takes roughly 80 ms.
func (r *RealReader) ReadCelsius() (float64, error) {
	if err := r.dev.Tx([]byte{0xAC, 0x33, 0x00}, nil); err != nil {
		return 0, fmt.Errorf("trigger measurement: %w", err)
	}
	time.Sleep(aht20MeasureDelay)

	// Status byte + 20-bit humidity + 20-bit temperature + CRC.
	buf := make([]byte, 7)
	for retries := 0; ; retries++ {
		if err := r.dev.Tx(nil, buf); err != nil {
			return 0, fmt.Errorf("read measurement: %w", err)
		}
		if buf[0]&aht20StatusBusy == 0 {
			break
		}
		if retries >= 3 {
			return 0, fmt.Errorf("sensor busy after %d retries", retries)
		}
		time.Sleep(10 * time.Millisecond)
	}

	raw := uint32(buf[3]&0x0F)<<16 | uint32(buf[4])<<8 | uint32(buf[5])
	return float64(raw)/1048576*200 - 50, nil
}

// Close releases the I2C bus.
func (r *RealReader) Close() error {
	return r.bus.Close()
}
