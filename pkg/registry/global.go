/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package registry

var defaultRegistry *Registry // initialized on first use

// Default returns the process-wide registry filled by Test.
func Default() *Registry {
	if defaultRegistry == nil {
		defaultRegistry = NewRegistry()
	}
	return defaultRegistry
}

// Test registers body under name in the Default registry. It always
// returns true so that it can be used as a package variable initializer:
//
//	var _ = registry.Test("sum", func() {
//		assert.Equal(4, sum(2, 2))
//	})
//
// Package initialization runs before main, so the test is available
// once the runner starts.
func Test(name string, body TestFunc) bool {
	Default().Register(name, body)
	return true
}
