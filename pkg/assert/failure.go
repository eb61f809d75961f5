/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package assert

import (
	"fmt"
)

const (
	OpEqual    = "=="
	OpNotEqual = "!="
)

// AssertionFailure is the panic value raised by a failed assertion.
// The runner recovers it and reports Error() as the failure message.
type AssertionFailure struct {
	File     string
	Line     int
	Expected string
	Actual   string
	Op       string

	operands []interface{}
}

func (f *AssertionFailure) Error() string {
	return fmt.Sprintf("%s:%d: expected %s%s%s",
		f.File, f.Line, f.Expected, f.Op, f.Actual)
}

// IsAssertionFailure reports whether v, typically a recovered panic
// value, is an AssertionFailure.
func IsAssertionFailure(v interface{}) (*AssertionFailure, bool) {
	f, ok := v.(*AssertionFailure)
	return f, ok
}
