package main

import (
	"fmt"

	"github.com/kbukum/streamkit/config"
	"github.com/kbukum/streamkit/demo"
	"github.com/kbukum/streamkit/validation"
)

const appName = "streamdemo"

// AppConfig is the streamdemo configuration.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Demo                 DemoConfig      `yaml:"demo" mapstructure:"demo"`
	Telemetry            TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// DemoConfig selects the engines and the input range from..to.
type DemoConfig struct {
	Engine string `yaml:"engine" mapstructure:"engine"`
	From   int    `yaml:"from" mapstructure:"from" validate:"gte=-1000000,lte=1000000"`
	To     int    `yaml:"to" mapstructure:"to" validate:"gtefield=From,gte=-1000000,lte=1000000"`
}

// TelemetryConfig configures OTLP export of traces and metrics.
type TelemetryConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// ApplyDefaults fills unset values.
func (c *AppConfig) ApplyDefaults() {
	if c.Base.Name == "" {
		c.Base.Name = appName
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Demo.Engine == "" {
		c.Demo.Engine = demo.EngineAll
	}
	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = "localhost:4318"
	}
	if c.Telemetry.Enabled && c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1.0
	}
}

// Validate checks every section.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	if _, err := demo.ParseEngines(c.Demo.Engine); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return nil
}
