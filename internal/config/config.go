// Package config loads the optional YAML hardware configuration.
// Everything has a default matching the reference wiring, so the daemon
// runs without a config file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sweeney/pi-thermostat/internal/actuator"
	"github.com/sweeney/pi-thermostat/internal/input"
	"github.com/sweeney/pi-thermostat/internal/telemetry"
)

// Config describes the hardware wiring and transports.
type Config struct {
	Pins   PinConfig    `yaml:"pins"`
	I2C    I2CConfig    `yaml:"i2c"`
	Serial SerialConfig `yaml:"serial"`
	Broker string       `yaml:"broker"` // MQTT broker URL; empty disables the mirror
	HTTP   string       `yaml:"http"`   // status server address; empty disables
}

// PinConfig holds BCM pin numbers.
type PinConfig struct {
	Toggle   int `yaml:"toggle"`
	Increase int `yaml:"increase"`
	Decrease int `yaml:"decrease"`
	Heat     int `yaml:"heat"` // must be hardware PWM capable
	Cool     int `yaml:"cool"` // must be hardware PWM capable
}

// I2CConfig holds the I2C bus and device addresses.
type I2CConfig struct {
	Bus         string `yaml:"bus"`
	DisplayAddr uint16 `yaml:"display_addr"`
}

// SerialConfig holds the telemetry serial port settings.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// Default returns the configuration matching the reference wiring.
func Default() Config {
	return Config{
		Pins: PinConfig{
			Toggle:   input.DefaultPinToggle,
			Increase: input.DefaultPinIncrease,
			Decrease: input.DefaultPinDecrease,
			Heat:     actuator.DefaultPinHeat,
			Cool:     actuator.DefaultPinCool,
		},
		I2C: I2CConfig{
			Bus:         "1",
			DisplayAddr: 0x27,
		},
		Serial: SerialConfig{
			Port: telemetry.DefaultPort,
			Baud: telemetry.DefaultBaud,
		},
		HTTP: ":80",
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}
