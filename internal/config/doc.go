// Package config loads and validates the service configuration.
//
// Values are collected from environment variables, command-line flags, an
// optional JSON file, and built-in defaults, then merged in that priority
// order and validated before the application starts.
package config
