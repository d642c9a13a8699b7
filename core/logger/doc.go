// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production).
//
// # Run correlation
//
// Every CLI invocation is tagged with a generated run_id so that the
// warnings emitted while profiling a dataset can be correlated with the
// summary lines of the same run. WithRunID attaches the field.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("profiling dataset")
package logger
