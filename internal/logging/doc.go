// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// Example Usage:
//
//	log := logging.NewDefault()
//	log.Info("parsed document", zap.Int("nodes", n))
package logging
