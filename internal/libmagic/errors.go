package libmagic

import "errors"

var (
	// ErrLibraryNotFound means no candidate soname could be loaded by the
	// platform dynamic loader.
	ErrLibraryNotFound = errors.New("libmagic: shared library not found")

	// ErrPlatformUnsupported means the current GOOS has no dynamic loader
	// support in this binding.
	ErrPlatformUnsupported = errors.New("libmagic: platform not supported")

	// ErrUnknownSymbol means a registration was attempted for a name that
	// has no entry in the signature table. This is a bug in the binding,
	// not a property of the installed library.
	ErrUnknownSymbol = errors.New("libmagic: symbol not in signature table")

	// ErrSymbolMissing means the installed library does not export a
	// symbol this binding requires.
	ErrSymbolMissing = errors.New("libmagic: symbol not exported by installed library")

	// ErrUnsupported means an optional entry point is absent from the
	// installed library version.
	ErrUnsupported = errors.New("libmagic: not supported by installed library version")
)
