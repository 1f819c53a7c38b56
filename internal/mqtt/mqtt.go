// Package mqtt provides an optional MQTT mirror of the thermostat
// status, with abstraction for testing. Serial remains the primary
// telemetry channel; MQTT publishing is best-effort.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

// TopicStatus is the MQTT topic for periodic status messages.
const TopicStatus = "home/thermostat/status"

// TopicSystem is the MQTT topic for lifecycle events.
const TopicSystem = "home/thermostat/system"

// Publisher publishes thermostat messages to MQTT.
type Publisher interface {
	// PublishStatus sends a periodic status message.
	// Returns error if publishing fails (should not crash the process).
	PublishStatus(s Status) error

	// PublishSystem sends a lifecycle event (STARTUP, SHUTDOWN).
	PublishSystem(e SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// Status is one periodic thermostat status sample.
type Status struct {
	Timestamp time.Time
	Mode      logic.Mode
	TempF     float64
	SetPoint  int
}

// SystemEvent represents a lifecycle event.
type SystemEvent struct {
	Timestamp time.Time
	Event     string // "STARTUP", "SHUTDOWN"
	Reason    string // e.g. "SIGTERM" (shutdown only)
	Retained  bool
}

// StatusPayload is the JSON shape of a status message.
type StatusPayload struct {
	Thermostat ThermostatPayload `json:"thermostat"`
}

// ThermostatPayload contains the status details.
type ThermostatPayload struct {
	Timestamp    string  `json:"timestamp"`
	Mode         string  `json:"mode"`
	TemperatureF float64 `json:"temperature_f"`
	SetPoint     int     `json:"set_point"`
}

// FormatStatusPayload creates the JSON payload for a status message.
func FormatStatusPayload(s Status) ([]byte, error) {
	payload := StatusPayload{
		Thermostat: ThermostatPayload{
			Timestamp:    s.Timestamp.UTC().Format(time.RFC3339),
			Mode:         string(s.Mode),
			TemperatureF: s.TempF,
			SetPoint:     s.SetPoint,
		},
	}
	return json.Marshal(payload)
}

// SystemPayload is the JSON shape of a lifecycle message.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the lifecycle event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a lifecycle event.
func FormatSystemPayload(e SystemEvent) ([]byte, error) {
	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
			Event:     e.Event,
			Reason:    e.Reason,
		},
	}
	return json.Marshal(payload)
}
