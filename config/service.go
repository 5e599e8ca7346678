package config

import (
	"fmt"

	"github.com/kbukum/streamkit/logger"
)

// ServiceConfig groups the base and logging sections. Applications embed it
// in their own config structs:
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Demo DemoConfig `yaml:"demo" mapstructure:"demo"`
//	}
type ServiceConfig struct {
	Base    BaseConfig    `yaml:"base" mapstructure:"base"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies defaults to both sections. Debug mode lowers the
// default log level to debug.
func (c *ServiceConfig) ApplyDefaults() {
	c.Base.ApplyDefaults()
	if c.Logging.Level == "" && c.Base.Debug {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates both sections.
func (c *ServiceConfig) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
