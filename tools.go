//go:build tools
// +build tools

// tools.go tracks the code generators used by go:generate.
package main

import (
	_ "go.uber.org/mock/mockgen"
)
