//go:build tools

// Package tools pins development tool dependencies.
//
// Tools used by this repo but not imported by application code:
//   - github.com/pressly/goose/v3/cmd/goose (migrations, via go.mod tool directive)
//   - github.com/matryer/moq (service mocks, installed separately)
package tools
