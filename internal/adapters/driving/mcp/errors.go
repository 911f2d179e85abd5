// Package mcp provides an MCP (Model Context Protocol) server adapter for vecalc.
// It lets AI assistants evaluate vector expressions and grade quiz answers.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")

// ErrQuizUnavailable is returned by quiz tools when no quiz service is configured.
var ErrQuizUnavailable = errors.New("mcp: quiz service not configured")
