package magic

import (
	"errors"
	"fmt"

	"github.com/filemagic/magic-go/internal/libmagic"
)

var (
	// ErrLibraryNotFound indicates the libmagic shared library could not
	// be located or loaded. No Session can be constructed.
	ErrLibraryNotFound = libmagic.ErrLibraryNotFound

	// ErrUnsupported indicates the installed libmagic version does not
	// export the entry point backing the attempted operation.
	ErrUnsupported = libmagic.ErrUnsupported

	// ErrPlatformUnsupported indicates the current platform has no
	// dynamic loader support in this binding.
	ErrPlatformUnsupported = libmagic.ErrPlatformUnsupported

	// ErrOpenFailed indicates magic_open returned no cookie.
	ErrOpenFailed = errors.New("magic: open failed")

	// ErrSessionClosed indicates an operation was attempted after Close.
	ErrSessionClosed = errors.New("magic: session closed")

	// ErrDetection indicates a detection call failed in the native layer.
	ErrDetection = errors.New("magic: detection failed")

	// ErrDatabaseLoad indicates a magic database could not be loaded.
	ErrDatabaseLoad = errors.New("magic: database load failed")

	// ErrDatabase indicates a database check/compile/list operation
	// failed.
	ErrDatabase = errors.New("magic: database operation failed")

	// ErrInvalidFlags indicates the native layer rejected a flag bitmask.
	ErrInvalidFlags = errors.New("magic: invalid flags")

	// ErrInvalidParameter indicates the native layer rejected a parameter
	// id or value.
	ErrInvalidParameter = errors.New("magic: invalid parameter")
)

// Error is a native-call failure. It carries the diagnostic text and
// errno reported by libmagic for the failing call, read on the same
// cookie before the session lock was released. Kind is one of the
// package sentinel errors, so errors.Is(err, magic.ErrDetection) and
// friends work on the wrapped value.
type Error struct {
	Op      string // failing operation, e.g. "file", "load"
	Kind    error
	Message string // verbatim magic_error text, may be empty
	Errno   int    // magic_errno value
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %v (errno %d)", e.Op, e.Kind, e.Errno)
	}
	return fmt.Sprintf("magic: %s: %s (errno %d)", e.Op, e.Message, e.Errno)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
