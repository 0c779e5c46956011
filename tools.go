//go:build tools

package regal

import (
	_ "golang.org/x/tools/cmd/stringer"
)
