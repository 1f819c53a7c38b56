// Package status provides a thread-safe status tracker for the
// thermostat daemon. The event loop is the only writer; HTTP handlers
// read point-in-time snapshots.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

// Config contains daemon configuration for display on the status page.
type Config struct {
	TickMs     int64
	SerialPort string
	Baud       int
	Broker     string
	HTTPAddr   string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Mode          logic.Mode
	SetPoint      int
	TempF         float64
	Counts        logic.EventCounts
	TelemetrySent int
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
	now  func() time.Time
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			Mode:      logic.ModeOff,
			SetPoint:  logic.DefaultSetPoint,
			TempF:     sensorDefault,
			StartTime: startTime,
			Config:    cfg,
		},
		now: time.Now,
	}
}

// sensorDefault mirrors the temperature cache seed so the page shows a
// plausible value before the first tick.
const sensorDefault = 72.0

// Update sets mode, setpoint, temperature and counts.
// Called from the event loop on every tick.
func (t *Tracker) Update(mode logic.Mode, setPoint int, tempF float64, counts logic.EventCounts) {
	t.mu.Lock()
	t.snap.Mode = mode
	t.snap.SetPoint = setPoint
	t.snap.TempF = tempF
	t.snap.Counts = counts
	t.mu.Unlock()
}

// TelemetrySent increments the telemetry emission counter.
func (t *Tracker) TelemetrySent() {
	t.mu.Lock()
	t.snap.TelemetrySent++
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a copy of the current state with Now filled in.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	snap := t.snap
	t.mu.RUnlock()
	snap.Now = t.now()
	return snap
}
