// Package config provides 12-factor configuration for the treequery CLI.
//
// Configuration is loaded from TREEQUERY_-prefixed environment variables
// with sensible defaults.
//
// Environment Variables:
//   - TREEQUERY_FETCH_TIMEOUT, TREEQUERY_FETCH_RETRIES, TREEQUERY_FETCH_MAX_BODY
//   - TREEQUERY_LOG_LEVEL, TREEQUERY_LOG_DEV
package config
