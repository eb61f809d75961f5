/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package runner

import (
	"io"

	"github.com/macaroni-os/simple-ut/pkg/registry"
)

// RunAllDefault runs the tests registered with registry.Test.
func RunAllDefault(w io.Writer) int {
	return NewRunner(registry.Default()).RunAll(w)
}
