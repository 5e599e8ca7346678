// Package logger provides structured logging for streamkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The staged engine logs
// each pipeline run through the "staged" component logger.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("staged")
//	log.Debug("pipeline run completed", logger.Fields("pipeline", id, "elements", n))
package logger
