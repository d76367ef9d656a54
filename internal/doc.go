// Package internal contains the supporting packages for the phq CLI.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules. The public library
// surface is the dimension, unit, and quantity packages at the module root.
//
// # Package Organization
//
//   - config: Configuration management backed by Viper with validation
//   - errors: Structured errors with did-you-mean suggestions
//   - format: Shared number-to-string formatting
//   - logging: Structured logging backed by log/slog
//   - version: Build metadata exposed by the version command
package internal
