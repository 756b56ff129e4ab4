package magic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCarriesNativeDiagnostics(t *testing.T) {
	err := &Error{
		Op:      "load",
		Kind:    ErrDatabaseLoad,
		Message: "could not find any valid magic files!",
		Errno:   2,
	}

	require.ErrorIs(t, err, ErrDatabaseLoad)
	require.Contains(t, err.Error(), "could not find any valid magic files!")
	require.Contains(t, err.Error(), "errno 2")
}

func TestErrorWithoutMessageFallsBackToKind(t *testing.T) {
	err := &Error{Op: "setflags", Kind: ErrInvalidFlags, Errno: 22}

	require.ErrorIs(t, err, ErrInvalidFlags)
	require.Contains(t, err.Error(), "setflags")
	require.Contains(t, err.Error(), "errno 22")
}

func TestErrorUnwrap(t *testing.T) {
	err := &Error{Op: "buffer", Kind: ErrDetection}
	require.Equal(t, ErrDetection, errors.Unwrap(err))

	var me *Error
	require.ErrorAs(t, error(err), &me)
	require.Equal(t, "buffer", me.Op)
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrLibraryNotFound, ErrPlatformUnsupported, ErrUnsupported,
		ErrOpenFailed, ErrSessionClosed,
		ErrDetection, ErrDatabaseLoad, ErrDatabase, ErrInvalidFlags,
		ErrInvalidParameter,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				require.NotErrorIs(t, a, b)
			}
		}
	}
}
