package web

import (
	"encoding/json"
	"time"

	"github.com/sweeney/pi-thermostat/internal/status"
)

// StatusJSON is the JSON representation of the daemon status.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Mode          string     `json:"mode"`
	SetPoint      int        `json:"set_point"`
	TemperatureF  float64    `json:"temperature_f"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	StartTime     string     `json:"start_time"`
	Timestamp     string     `json:"timestamp"`
	MQTT          MQTTStatus `json:"mqtt"`
	Counts        CountsJSON `json:"event_counts"`
	Config        ConfigJSON `json:"config"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of event counts.
type CountsJSON struct {
	Cycles        int `json:"mode_cycles"`
	Increases     int `json:"setpoint_increases"`
	Decreases     int `json:"setpoint_decreases"`
	TelemetrySent int `json:"telemetry_lines"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	TickMs     int64  `json:"tick_ms"`
	SerialPort string `json:"serial_port"`
	Baud       int    `json:"baud"`
	Broker     string `json:"broker"`
	HTTPAddr   string `json:"http_addr"`
}

func formatJSON(snap status.Snapshot) []byte {
	sj := StatusJSON{
		Status: StatusInner{
			Mode:          string(snap.Mode),
			SetPoint:      snap.SetPoint,
			TemperatureF:  snap.TempF,
			UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
			StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
			Timestamp:     snap.Now.UTC().Format(time.RFC3339),
			MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
			Counts: CountsJSON{
				Cycles:        snap.Counts.Cycles,
				Increases:     snap.Counts.Increases,
				Decreases:     snap.Counts.Decreases,
				TelemetrySent: snap.TelemetrySent,
			},
			Config: ConfigJSON{
				TickMs:     snap.Config.TickMs,
				SerialPort: snap.Config.SerialPort,
				Baud:       snap.Config.Baud,
				Broker:     snap.Config.Broker,
				HTTPAddr:   snap.Config.HTTPAddr,
			},
		},
	}

	data, _ := json.MarshalIndent(sj, "", "  ")
	return data
}
