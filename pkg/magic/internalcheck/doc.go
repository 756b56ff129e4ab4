// Package internalcheck holds source-level policy tests for the binding.
// They assert structural invariants that ordinary unit tests cannot see,
// like the lock discipline around the native cookie.
package internalcheck
