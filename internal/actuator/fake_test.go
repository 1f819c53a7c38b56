package actuator

import (
	"testing"
	"time"

	"github.com/sweeney/pi-thermostat/internal/logic"
)

func TestFakeDriverStartsOff(t *testing.T) {
	f := NewFakeDriver()
	for _, ch := range []logic.Channel{logic.ChannelHeat, logic.ChannelCool} {
		if got := f.Drive(ch).State; got != DriveOff {
			t.Errorf("%s: got %s, want %s", ch, got, DriveOff)
		}
	}
}

func TestFakeDriverRecordsCommands(t *testing.T) {
	f := NewFakeDriver()

	f.SetPulsing(logic.ChannelHeat, time.Second, time.Second)
	f.SetSteadyOn(logic.ChannelCool)
	f.SetOff(logic.ChannelHeat)

	if got := f.Drive(logic.ChannelHeat).State; got != DriveOff {
		t.Errorf("heat: got %s, want %s", got, DriveOff)
	}
	if got := f.Drive(logic.ChannelCool).State; got != DriveSteady {
		t.Errorf("cool: got %s, want %s", got, DriveSteady)
	}

	if len(f.History) != 3 {
		t.Fatalf("history length: got %d, want 3", len(f.History))
	}
	if f.History[0].Drive.State != DrivePulsing || f.History[0].Drive.FadeIn != time.Second {
		t.Errorf("first entry: got %+v", f.History[0])
	}
}

func TestFakeDriverCloseForcesOff(t *testing.T) {
	f := NewFakeDriver()
	f.SetSteadyOn(logic.ChannelHeat)

	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !f.Closed {
		t.Error("expected Closed to be set")
	}
	if got := f.Drive(logic.ChannelHeat).State; got != DriveOff {
		t.Errorf("heat after close: got %s, want %s", got, DriveOff)
	}
}
