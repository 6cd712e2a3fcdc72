//go:build tools
// +build tools

// Package tools pins Go-based tools invoked via `go generate` (mockgen)
// so they are tracked in go.mod and go.sum.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
