package mqtt

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

func TestFormatStatusPayload(t *testing.T) {
	s := Status{
		Timestamp: time.Date(2026, 3, 7, 14, 30, 0, 0, time.UTC),
		Mode:      logic.ModeHeat,
		TempF:     71.5,
		SetPoint:  72,
	}

	payload, err := FormatStatusPayload(s)
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	var decoded StatusPayload
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.Thermostat.Mode != "heat" {
		t.Errorf("mode: got %q, want %q", decoded.Thermostat.Mode, "heat")
	}
	if decoded.Thermostat.TemperatureF != 71.5 {
		t.Errorf("temperature: got %v, want 71.5", decoded.Thermostat.TemperatureF)
	}
	if decoded.Thermostat.SetPoint != 72 {
		t.Errorf("setpoint: got %d, want 72", decoded.Thermostat.SetPoint)
	}
	if decoded.Thermostat.Timestamp != "2026-03-07T14:30:00Z" {
		t.Errorf("timestamp: got %q", decoded.Thermostat.Timestamp)
	}
}

func TestFormatSystemPayload(t *testing.T) {
	e := SystemEvent{
		Timestamp: time.Date(2026, 3, 7, 14, 30, 0, 0, time.UTC),
		Event:     "SHUTDOWN",
		Reason:    "SIGTERM",
	}

	payload, err := FormatSystemPayload(e)
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	var decoded SystemPayload
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.System.Event != "SHUTDOWN" {
		t.Errorf("event: got %q", decoded.System.Event)
	}
	if decoded.System.Reason != "SIGTERM" {
		t.Errorf("reason: got %q", decoded.System.Reason)
	}
}

func TestFormatSystemPayloadOmitsEmptyReason(t *testing.T) {
	payload, err := FormatSystemPayload(SystemEvent{
		Timestamp: time.Now(),
		Event:     "STARTUP",
	})
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := raw["system"]["reason"]; present {
		t.Error("empty reason should be omitted")
	}
}

func TestFakePublisherRecords(t *testing.T) {
	f := NewFakePublisher()

	s := Status{Timestamp: time.Now(), Mode: logic.ModeCool, TempF: 75.2, SetPoint: 70}
	if err := f.PublishStatus(s); err != nil {
		t.Fatalf("publish status: %v", err)
	}
	if err := f.PublishSystem(SystemEvent{Event: "STARTUP"}); err != nil {
		t.Fatalf("publish system: %v", err)
	}

	if len(f.Statuses) != 1 || f.Statuses[0].Mode != logic.ModeCool {
		t.Errorf("statuses: got %+v", f.Statuses)
	}
	if len(f.StatusPayloads) != 1 {
		t.Errorf("status payloads: got %d, want 1", len(f.StatusPayloads))
	}
	if len(f.SystemEvents) != 1 || f.SystemEvents[0].Event != "STARTUP" {
		t.Errorf("system events: got %+v", f.SystemEvents)
	}
}

func TestFakePublisherErrors(t *testing.T) {
	f := NewFakePublisher()
	f.PublishStatusError = errors.New("broker down")

	if err := f.PublishStatus(Status{}); err == nil {
		t.Fatal("expected error")
	}
	if len(f.Statuses) != 0 {
		t.Errorf("nothing should be recorded on error, got %d", len(f.Statuses))
	}
}
