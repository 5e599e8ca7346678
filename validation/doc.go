// Package validation validates configuration structs using struct tags.
//
//	type DemoConfig struct {
//	    Engine string `mapstructure:"engine" validate:"omitempty,oneof=all pull push staged"`
//	    From   int    `mapstructure:"from"`
//	    To     int    `mapstructure:"to" validate:"gtefield=From"`
//	}
//	err := validation.Validate(cfg)
//
// Field names in errors are the dotted mapstructure keys (demo.to), so a
// message points at the config entry to fix.
package validation
