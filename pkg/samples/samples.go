/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/

// Package samples contains self-registered tests executed by the
// simple-ut run command. Importing the package registers them.
package samples

import (
	"strings"

	"github.com/macaroni-os/simple-ut/pkg/assert"
	"github.com/macaroni-os/simple-ut/pkg/registry"
)

func sum(values ...int) int {
	ans := 0
	for _, v := range values {
		ans += v
	}
	return ans
}

func checkWords(phrase string, n int) {
	assert.Equal(n, len(strings.Fields(phrase)))
}

var _ = registry.Test("sum_of_values", func() {
	assert.Equal(4, sum(2, 2))
	assert.Equal(0, sum())
	assert.NotEqual(5, sum(2, 2))
})

var _ = registry.Test("string_helpers", func() {
	assert.Equal("MARK", strings.ToUpper("mark"))
	assert.NotEqual("", strings.TrimSpace(" simple-ut "))
	checkWords("a self registering test harness", 5)
})

var _ = registry.Test("operands_evaluated_once", func() {
	calls := 0
	next := func() int {
		calls++
		return calls
	}
	assert.Equal(1, next())
	assert.Equal(1, calls)
})
