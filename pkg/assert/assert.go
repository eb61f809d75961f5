/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package assert

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/google/go-cmp/cmp"
)

// Equal aborts the running test when expected != actual.
// The failure message reports the caller position and the source text
// of both arguments, e.g. "sum_test.go:12: expected 4==sum(2, 2)".
func Equal[T comparable](expected, actual T) {
	if expected != actual {
		fail("Equal", OpEqual, expected, actual)
	}
}

// NotEqual aborts the running test when expected == actual.
func NotEqual[T comparable](expected, actual T) {
	if expected == actual {
		fail("NotEqual", OpNotEqual, expected, actual)
	}
}

func fail(fname, op string, expected, actual interface{}) {
	// 0: fail, 1: Equal/NotEqual, 2: the test body or helper.
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
		line = 0
	}

	f := &AssertionFailure{
		File: filepath.Base(file),
		Line: line,
		Op:   op,
	}

	if e, a, found := callArguments(file, line, fname); found {
		f.Expected, f.Actual = e, a
	} else {
		f.Expected = fmt.Sprintf("%#v", expected)
		f.Actual = fmt.Sprintf("%#v", actual)
	}

	if op == OpEqual {
		f.operands = []interface{}{expected, actual}
	}

	panic(f)
}

// Diff returns the go-cmp diff (-expected +actual) of the operands of a
// failed Equal. It's empty for NotEqual failures.
func (f *AssertionFailure) Diff() string {
	if len(f.operands) != 2 {
		return ""
	}
	return diff(f.operands[0], f.operands[1])
}

func diff(expected, actual interface{}) (ans string) {
	defer func() {
		if r := recover(); r != nil {
			ans = fmt.Sprintf("-%#v\n+%#v", expected, actual)
		}
	}()
	return cmp.Diff(expected, actual,
		cmp.Exporter(func(reflect.Type) bool { return true }))
}
