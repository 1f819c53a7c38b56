package internal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sweeney/pi-thermostat/internal/actuator"
	"github.com/sweeney/pi-thermostat/internal/display"
	"github.com/sweeney/pi-thermostat/internal/logic"
	"github.com/sweeney/pi-thermostat/internal/mqtt"
	"github.com/sweeney/pi-thermostat/internal/sensor"
	"github.com/sweeney/pi-thermostat/internal/telemetry"
)

// TestIntegrationFullFlow runs a whole usage session through the fakes:
// the room cools down, the user turns on heat and raises the setpoint,
// the room warms past it, the user cycles to off.
func TestIntegrationFullFlow(t *testing.T) {
	drives := actuator.NewFakeDriver()
	therm := logic.NewThermostat(drives)
	disp := display.NewFakeDisplay()
	tele := telemetry.NewFakeWriter()
	pub := mqtt.NewFakePublisher()
	temps := sensor.NewCached(sensor.NewFakeReader([]sensor.Reading{
		{Celsius: sensor.CelsiusForF(68)}, // cold room at startup
		{Celsius: sensor.CelsiusForF(68)},
		{Celsius: sensor.CelsiusForF(77)}, // furnace caught up
	}))

	now := time.Date(2024, time.March, 7, 18, 0, 0, 0, time.UTC)

	// Startup: off, nothing driven.
	tempF := temps.ReadFahrenheit()
	if tempF != 68 {
		t.Fatalf("startup temp: got %.1f, want 68.0", tempF)
	}
	if got := drives.Drive(logic.ChannelHeat).State; got != actuator.DriveOff {
		t.Fatalf("heat driven while off: %s", got)
	}

	// User presses toggle: heat mode, below setpoint, pulsing.
	if err := therm.Cycle(tempF); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if therm.Mode() != logic.ModeHeat {
		t.Fatalf("mode: got %s, want heat", therm.Mode())
	}
	if got := drives.Drive(logic.ChannelHeat).State; got != actuator.DrivePulsing {
		t.Errorf("heat drive: got %s, want pulsing", got)
	}

	// User raises the setpoint twice.
	therm.IncreaseSetPoint()
	if got := therm.IncreaseSetPoint(); got != 74 {
		t.Fatalf("set point: got %d, want 74", got)
	}

	// A display tick renders both views and emits telemetry.
	tempF = temps.ReadFahrenheit()
	line1, line2 := display.Lines(now, tempF, therm.Mode(), therm.SetPoint(), false)
	if line1 != "03/07 18:00:00" {
		t.Errorf("line1: got %q", line1)
	}
	if line2 != "HEAT 74F" {
		t.Errorf("line2: got %q", line2)
	}
	if err := disp.Update(line1, line2); err != nil {
		t.Fatalf("display update: %v", err)
	}
	if err := tele.Write(telemetry.FormatLine(therm.Mode(), tempF, therm.SetPoint())); err != nil {
		t.Fatalf("telemetry write: %v", err)
	}
	if got, want := string(tele.Lines[0]), "heat,68.0,74\n"; got != want {
		t.Errorf("telemetry: got %q, want %q", got, want)
	}
	if err := pub.PublishStatus(mqtt.Status{Timestamp: now, Mode: therm.Mode(), TempF: tempF, SetPoint: therm.SetPoint()}); err != nil {
		t.Fatalf("publish status: %v", err)
	}
	var payload struct {
		Thermostat struct {
			Mode     string `json:"mode"`
			SetPoint int    `json:"set_point"`
		} `json:"thermostat"`
	}
	if err := json.Unmarshal(pub.StatusPayloads[0], &payload); err != nil {
		t.Fatalf("status payload: %v", err)
	}
	if payload.Thermostat.Mode != "heat" || payload.Thermostat.SetPoint != 74 {
		t.Errorf("payload: got %+v", payload.Thermostat)
	}

	// The furnace catches up; the next tick reads 77°F and the drive
	// goes steady.
	tempF = temps.ReadFahrenheit()
	therm.ControlActuators(tempF)
	if got := drives.Drive(logic.ChannelHeat).State; got != actuator.DriveSteady {
		t.Errorf("heat drive at 77/74: got %s, want steady", got)
	}

	// User cycles through cool back to off. 77 above 74 means cool
	// pulses, and the final off leg drops everything.
	if err := therm.Cycle(tempF); err != nil {
		t.Fatalf("cycle to cool: %v", err)
	}
	if got := drives.Drive(logic.ChannelHeat).State; got != actuator.DriveOff {
		t.Errorf("heat drive after leaving heat: got %s", got)
	}
	if got := drives.Drive(logic.ChannelCool).State; got != actuator.DrivePulsing {
		t.Errorf("cool drive at 77/74: got %s, want pulsing", got)
	}
	if err := therm.Cycle(tempF); err != nil {
		t.Fatalf("cycle to off: %v", err)
	}
	if therm.Mode() != logic.ModeOff {
		t.Fatalf("mode: got %s, want off", therm.Mode())
	}
	if drives.Drive(logic.ChannelHeat).State != actuator.DriveOff || drives.Drive(logic.ChannelCool).State != actuator.DriveOff {
		t.Error("channels still driven in off mode")
	}

	counts := therm.Counts()
	if counts.Cycles != 3 || counts.Increases != 2 || counts.Decreases != 0 {
		t.Errorf("counts: got %+v", counts)
	}
}

// TestIntegrationSensorFailure checks the cached fallback end to end:
// a failed read changes neither telemetry nor actuator decisions.
func TestIntegrationSensorFailure(t *testing.T) {
	drives := actuator.NewFakeDriver()
	therm := logic.NewThermostat(drives)
	tele := telemetry.NewFakeWriter()
	temps := sensor.NewCached(sensor.NewFakeReader([]sensor.Reading{
		{Celsius: sensor.CelsiusForF(68)},
		{Err: errSensorGone},
	}))

	if err := therm.Cycle(temps.ReadFahrenheit()); err != nil { // heat, pulsing at 68/72
		t.Fatalf("cycle: %v", err)
	}

	// The sensor dies. The next tick reads the cached 68.
	tempF := temps.ReadFahrenheit()
	if tempF != 68 {
		t.Fatalf("fallback temp: got %.1f, want cached 68.0", tempF)
	}
	therm.ControlActuators(tempF)
	if got := drives.Drive(logic.ChannelHeat).State; got != actuator.DrivePulsing {
		t.Errorf("heat drive on cached temp: got %s, want pulsing", got)
	}
	if err := tele.Write(telemetry.FormatLine(therm.Mode(), tempF, therm.SetPoint())); err != nil {
		t.Fatalf("telemetry write: %v", err)
	}
	if got, want := string(tele.Lines[0]), "heat,68.0,72\n"; got != want {
		t.Errorf("telemetry: got %q, want %q", got, want)
	}
}

type sensorError string

func (e sensorError) Error() string { return string(e) }

const errSensorGone = sensorError("i2c: device not responding")
