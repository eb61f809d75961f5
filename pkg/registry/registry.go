/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package registry

// TestFunc is the body of a test. A failure is signaled by panicking,
// usually through the functions of the assert package.
type TestFunc func()

type TestEntry struct {
	Name string
	Body TestFunc
}

// Registry holds the test entries in registration order.
// It is not safe for concurrent registration.
type Registry struct {
	entries []TestEntry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: []TestEntry{},
	}
}

// Register appends a new test. Duplicated names are allowed and each
// entry is executed on its own.
func (r *Registry) Register(name string, body TestFunc) {
	r.entries = append(r.entries, TestEntry{Name: name, Body: body})
}

// All returns a copy of the registered entries in registration order.
func (r *Registry) All() []TestEntry {
	ans := make([]TestEntry, len(r.entries))
	copy(ans, r.entries)
	return ans
}

func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) Names() []string {
	ans := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		ans = append(ans, e.Name)
	}
	return ans
}
