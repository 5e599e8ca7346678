// Package config loads application configuration from a YAML file, a .env
// file, environment variables and command-line flags.
//
// Sources are layered with Viper. From lowest to highest precedence:
// config file, environment (including values loaded from the .env file),
// changed flags.
//
//	var cfg AppConfig
//	err := config.LoadConfig("streamdemo", &cfg,
//	    config.WithEnvPrefix("STREAMDEMO"),
//	    config.WithFlags(map[string]*pflag.Flag{"demo.engine": fs.Lookup("engine")}),
//	)
//
// Environment variables map onto nested keys by splitting on underscores,
// so STREAMDEMO_DEMO_ENGINE sets demo.engine.
package config
