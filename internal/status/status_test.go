package status

import (
	"sync"
	"testing"
	"time"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

func testConfig() Config {
	return Config{
		TickMs:     1000,
		SerialPort: "/dev/ttyS0",
		Baud:       9600,
		Broker:     "tcp://broker:1883",
		HTTPAddr:   ":8080",
	}
}

func TestNewTrackerDefaults(t *testing.T) {
	start := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	tr := NewTracker(start, testConfig())

	snap := tr.Snapshot()
	if snap.Mode != logic.ModeOff {
		t.Errorf("mode: got %s, want off", snap.Mode)
	}
	if snap.SetPoint != logic.DefaultSetPoint {
		t.Errorf("setpoint: got %d, want %d", snap.SetPoint, logic.DefaultSetPoint)
	}
	if !snap.StartTime.Equal(start) {
		t.Errorf("start time: got %v, want %v", snap.StartTime, start)
	}
	if snap.Config.Broker != "tcp://broker:1883" {
		t.Errorf("config broker: got %q", snap.Config.Broker)
	}
}

func TestTrackerUpdate(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())

	counts := logic.EventCounts{Cycles: 2, Increases: 3, Decreases: 1}
	tr.Update(logic.ModeHeat, 74, 71.2, counts)

	snap := tr.Snapshot()
	if snap.Mode != logic.ModeHeat {
		t.Errorf("mode: got %s, want heat", snap.Mode)
	}
	if snap.SetPoint != 74 {
		t.Errorf("setpoint: got %d, want 74", snap.SetPoint)
	}
	if snap.TempF != 71.2 {
		t.Errorf("temp: got %v, want 71.2", snap.TempF)
	}
	if snap.Counts != counts {
		t.Errorf("counts: got %+v, want %+v", snap.Counts, counts)
	}
}

func TestTrackerTelemetryCounter(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())
	tr.TelemetrySent()
	tr.TelemetrySent()

	if got := tr.Snapshot().TelemetrySent; got != 2 {
		t.Errorf("telemetry counter: got %d, want 2", got)
	}
}

func TestTrackerMQTTConnected(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())

	tr.SetMQTTConnected(true)
	if !tr.Snapshot().MQTTConnected {
		t.Error("expected connected")
	}
	tr.SetMQTTConnected(false)
	if tr.Snapshot().MQTTConnected {
		t.Error("expected disconnected")
	}
}

func TestSnapshotUptime(t *testing.T) {
	start := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{
		StartTime: start,
		Now:       start.Add(90 * time.Second),
	}
	if got := snap.Uptime(); got != 90*time.Second {
		t.Errorf("uptime: got %v, want 90s", got)
	}
}

// TestTrackerConcurrentAccess exercises the lock under -race: the event
// loop writes while HTTP handlers snapshot.
func TestTrackerConcurrentAccess(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Update(logic.ModeCool, 70+n, 71.5, logic.EventCounts{Cycles: j})
				tr.TelemetrySent()
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = tr.Snapshot()
			}
		}()
	}
	wg.Wait()

	if got := tr.Snapshot().TelemetrySent; got != 400 {
		t.Errorf("telemetry counter: got %d, want 400", got)
	}
}
