/*
Package log provides structured logging for Rackmap built on zerolog.

A single global logger is initialized once at process startup and shared by
all packages. Components derive child loggers carrying identifying fields so
every line can be traced back to its origin.

# Usage

Initialize once in main:

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

Derive component loggers:

	logger := log.WithComponent("locator")
	logger.Info().Str("query", q).Int("total", n).Msg("search completed")

Request-scoped logging in the API layer:

	logger := log.WithRequestID(requestID)
	logger.Warn().Err(err).Msg("dataset load failed")

# Output Formats

JSON output (production, machine-parseable):

	{"level":"info","component":"api","time":"2026-08-26T10:00:00Z","message":"server listening"}

Console output (development, human-readable):

	2026-08-26T10:00:00Z INF server listening component=api

# Design Principles

  - One global logger, configured once, no per-package configuration
  - Child loggers add fields, never reconfigure output or level
  - Storage failure causes are logged here for operators and never echoed
    verbatim in HTTP responses

# See Also

  - zerolog documentation: https://github.com/rs/zerolog
*/
package log
