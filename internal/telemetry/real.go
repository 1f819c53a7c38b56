package telemetry

import (
	"fmt"

	"go.bug.st/serial"
)

// Serial port defaults for the reference board.
const (
	DefaultPort = "/dev/ttyS0"
	DefaultBaud = 9600
)

// RealWriter writes telemetry lines to an actual serial port.
type RealWriter struct {
	port serial.Port
}

// NewRealWriter opens the serial port at the given baud rate (8N1).
func NewRealWriter(portName string, baud int) (*RealWriter, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}
	return &RealWriter{port: port}, nil
}

// Write sends one line. No response is read.
func (w *RealWriter) Write(line []byte) error {
	if _, err := w.port.Write(line); err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	return nil
}

// Close closes the serial port.
func (w *RealWriter) Close() error {
	return w.port.Close()
}
