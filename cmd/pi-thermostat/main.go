// Command pi-thermostat runs a single-board thermostat: three buttons
// cycle the mode and adjust the setpoint, two PWM LEDs indicate
// heating/cooling, a 16x2 LCD shows status and a serial line carries
// periodic telemetry.
//
// All mutable state (mode, setpoint, cached temperature) is owned by a
// single event loop that interleaves display ticks and button presses
// through one select — there is no concurrent mutation to guard.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/pi-thermostat/internal/actuator"
	"github.com/sweeney/pi-thermostat/internal/config"
	"github.com/sweeney/pi-thermostat/internal/display"
	"github.com/sweeney/pi-thermostat/internal/input"
	"github.com/sweeney/pi-thermostat/internal/logic"
	"github.com/sweeney/pi-thermostat/internal/mqtt"
	"github.com/sweeney/pi-thermostat/internal/sensor"
	"github.com/sweeney/pi-thermostat/internal/status"
	"github.com/sweeney/pi-thermostat/internal/telemetry"
	"github.com/sweeney/pi-thermostat/internal/web"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (empty = built-in defaults)")
	tick := flag.Duration("tick", time.Second, "display loop tick period")
	broker := flag.String("broker", "", `MQTT broker address (overrides config; "off" disables)`)
	httpAddr := flag.String("http", "", `HTTP status address (overrides config; "off" disables)`)
	printTemp := flag.Bool("print-temp", false, "read the sensor once, print the temperature and exit")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
	applyOverride(&cfg.Broker, *broker)
	applyOverride(&cfg.HTTP, *httpAddr)

	if err := run(cfg, *tick, *printTemp); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

// applyOverride applies a flag value over a config field: empty leaves
// the config alone, "off" clears it, anything else replaces it.
func applyOverride(field *string, flagValue string) {
	switch flagValue {
	case "":
	case "off":
		*field = ""
	default:
		*field = flagValue
	}
}

func run(cfg config.Config, tickPeriod time.Duration, printTemp bool) error {
	// Initialize the sensor first; a thermostat without a thermometer
	// is not worth starting.
	reader, err := sensor.NewRealReader(cfg.I2C.Bus)
	if err != nil {
		return fmt.Errorf("init sensor: %w", err)
	}
	defer reader.Close()

	if printTemp {
		celsius, err := reader.ReadCelsius()
		if err != nil {
			return fmt.Errorf("read sensor: %w", err)
		}
		fmt.Printf("%.1f°F (%.1f°C)\n", celsius*9/5+32, celsius)
		return nil
	}

	temps := sensor.NewCached(reader)

	actuators, err := actuator.NewRealDriver(cfg.Pins.Heat, cfg.Pins.Cool)
	if err != nil {
		return fmt.Errorf("init actuators: %w", err)
	}
	defer actuators.Close()

	disp, err := display.NewRealDisplay(cfg.I2C.Bus, cfg.I2C.DisplayAddr)
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer disp.Close()

	buttons, err := input.NewRealSource(cfg.Pins.Toggle, cfg.Pins.Increase, cfg.Pins.Decrease)
	if err != nil {
		return fmt.Errorf("init buttons: %w", err)
	}
	defer buttons.Close()

	tele, err := telemetry.NewRealWriter(cfg.Serial.Port, cfg.Serial.Baud)
	if err != nil {
		return fmt.Errorf("open serial: %w", err)
	}
	defer tele.Close()

	// MQTT is advisory: a missing broker must not keep the thermostat
	// from controlling temperature.
	var pub mqtt.Publisher
	var mqttStatus mqtt.ConnectionStatus
	if cfg.Broker != "" {
		rp, err := mqtt.NewRealPublisher(cfg.Broker)
		if err != nil {
			log.Printf("mqtt disabled: %v", err)
		} else {
			pub = rp
			mqttStatus = rp
			defer rp.Close()
		}
	}

	startTime := time.Now()
	tracker := status.NewTracker(startTime, status.Config{
		TickMs:     tickPeriod.Milliseconds(),
		SerialPort: cfg.Serial.Port,
		Baud:       cfg.Serial.Baud,
		Broker:     cfg.Broker,
		HTTPAddr:   cfg.HTTP,
	})

	if cfg.HTTP != "" {
		srv := web.New(cfg.HTTP, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", cfg.HTTP)
	}

	if pub != nil {
		err := pub.PublishSystem(mqtt.SystemEvent{
			Timestamp: startTime,
			Event:     "STARTUP",
			Retained:  true,
		})
		if err != nil {
			log.Printf("failed to publish startup event: %v", err)
		}
	}

	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("started: tick=%v serial=%s@%d broker=%s http=%s",
		tickPeriod, cfg.Serial.Port, cfg.Serial.Baud, orDash(cfg.Broker), orDash(cfg.HTTP))

	therm := logic.NewThermostat(actuators)
	return runLoop(therm, temps, disp, tele, pub, mqttStatus, tracker, buttons.Events(), ticker.C, sigCh, time.Now)
}

// runLoop is the single-threaded event loop. It owns the thermostat
// state; ticks and button presses are processed strictly in arrival
// order, so mode and setpoint never see concurrent mutation.
func runLoop(therm *logic.Thermostat, temps *sensor.Cached, disp display.Display, tele telemetry.Writer, pub mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, buttons <-chan input.Event, tick <-chan time.Time, sig <-chan os.Signal, now func() time.Time) error {
	counter := 0
	// Line 2 starts on the mode/setpoint view and flips every 5 ticks.
	showTemp := false

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			if pub != nil {
				err := pub.PublishSystem(mqtt.SystemEvent{
					Timestamp: now(),
					Event:     "SHUTDOWN",
					Reason:    signalName,
					Retained:  true,
				})
				if err != nil {
					log.Printf("failed to publish shutdown event: %v", err)
				}
			}
			if err := disp.Clear(); err != nil {
				log.Printf("display clear error: %v", err)
			}
			therm.Shutdown()
			return nil

		case ev, ok := <-buttons:
			if !ok {
				// Source closed underneath us; keep ticking.
				buttons = nil
				continue
			}
			switch ev.Button {
			case input.ButtonToggle:
				if err := therm.Cycle(temps.ReadFahrenheit()); err != nil {
					// Reserved for future guarded transitions.
					log.Printf("mode cycle refused: %v", err)
				} else {
					log.Printf("mode -> %s", therm.Mode())
				}
			case input.ButtonIncrease:
				log.Printf("set point increased to %d", therm.IncreaseSetPoint())
			case input.ButtonDecrease:
				log.Printf("set point decreased to %d", therm.DecreaseSetPoint())
			}
			if tracker != nil {
				tracker.Update(therm.Mode(), therm.SetPoint(), temps.Last(), therm.Counts())
			}

		case <-tick:
			t := now()
			tempF := temps.ReadFahrenheit()

			line1, line2 := display.Lines(t, tempF, therm.Mode(), therm.SetPoint(), showTemp)
			if err := disp.Update(line1, line2); err != nil {
				// The daemon controls temperature fine with a dead
				// display, so this is not fatal.
				log.Printf("display update error: %v", err)
			}

			// Temperature may have drifted since mode entry.
			if therm.Mode() != logic.ModeOff {
				therm.ControlActuators(tempF)
			}

			if counter%telemetry.Interval == 0 {
				line := telemetry.FormatLine(therm.Mode(), tempF, therm.SetPoint())
				if err := tele.Write(line); err != nil {
					log.Printf("telemetry write error: %v", err)
				}
				if tracker != nil {
					tracker.TelemetrySent()
				}
				if pub != nil {
					err := pub.PublishStatus(mqtt.Status{
						Timestamp: t,
						Mode:      therm.Mode(),
						TempF:     tempF,
						SetPoint:  therm.SetPoint(),
					})
					if err != nil {
						log.Printf("mqtt publish error: %v", err)
					}
				}
			}

			counter++
			if counter%display.AlternateTicks == 0 {
				showTemp = !showTemp
			}

			if tracker != nil {
				tracker.Update(therm.Mode(), therm.SetPoint(), tempF, therm.Counts())
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
