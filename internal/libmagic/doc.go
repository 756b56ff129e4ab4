// Package libmagic is the raw interface to the native libmagic shared
// library. It locates the library through the platform dynamic loader,
// resolves each exported entry point against a static signature table,
// and exposes the results as typed Go callables on a Lib.
//
// The package knows nothing about sessions or locking; serializing calls
// on a cookie is the caller's responsibility (see pkg/magic).
package libmagic
