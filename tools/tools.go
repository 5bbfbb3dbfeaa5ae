//go:build tools

// Package tools pins build tools in go.mod.
package tools

import (
	_ "github.com/gopherjs/gopherjs"
)
