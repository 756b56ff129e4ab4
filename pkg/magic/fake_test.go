package magic

import (
	"fmt"

	"github.com/filemagic/magic-go/internal/libmagic"
)

// fakeState instruments an in-process stand-in for the native library.
// Tests assert on the call counters to verify which native entry points
// ran (and, for misuse paths, that none did).
type fakeState struct {
	opens   int
	closes  int
	loads   int
	files   int
	buffers int

	flags  int32
	params map[int32]uint64

	// failure injection for the next sentinel-checked call
	fail    bool
	message string
	errno   int32
}

// newFakeLib builds a Lib whose callables are Go closures with default
// success behavior. Tests override individual fields for failure paths.
func newFakeLib() (*libmagic.Lib, *fakeState) {
	st := &fakeState{params: map[int32]uint64{}}
	rc := func() int32 {
		if st.fail {
			return -1
		}
		return 0
	}
	lib := &libmagic.Lib{
		Open: func(flags int32) uintptr {
			st.opens++
			st.flags = flags
			return 0xC00C1E
		},
		Close: func(uintptr) { st.closes++ },
		Error: func(uintptr) string { return st.message },
		Errno: func(uintptr) int32 { return st.errno },
		File: func(_ uintptr, path []byte) (string, bool) {
			st.files++
			if st.fail {
				return "", false
			}
			// strip the C terminator; echo the path so cross-talk in
			// concurrent use is detectable
			return "type of " + string(path[:len(path)-1]), true
		},
		Buffer: func(_ uintptr, buf []byte) (string, bool) {
			st.buffers++
			if st.fail {
				return "", false
			}
			if len(buf) == 0 {
				return "application/x-empty", true
			}
			return "data", true
		},
		Descriptor: func(_ uintptr, fd int32) (string, bool) {
			if st.fail {
				return "", false
			}
			return fmt.Sprintf("type of fd %d", fd), true
		},
		GetFlags: func(uintptr) int32 { return st.flags },
		SetFlags: func(_ uintptr, flags int32) int32 {
			if st.fail {
				return -1
			}
			st.flags = flags
			return 0
		},
		Check:   func(uintptr, []byte) int32 { return rc() },
		Compile: func(uintptr, []byte) int32 { return rc() },
		List:    func(uintptr, []byte) int32 { return rc() },
		Load: func(uintptr, []byte) int32 {
			st.loads++
			return rc()
		},
		LoadBuffers: func(_ uintptr, bufs [][]byte) int32 { return rc() },
		GetParam: func(_ uintptr, p int32, v *uint64) int32 {
			if st.fail {
				return -1
			}
			*v = st.params[p]
			return 0
		},
		SetParam: func(_ uintptr, p int32, v *uint64) int32 {
			if st.fail {
				return -1
			}
			st.params[p] = *v
			return 0
		},
		Version: func() int32 { return 545 },
	}
	return lib, st
}

// injectFailure arms the fake's sentinel path with native diagnostics.
func (st *fakeState) injectFailure(message string, errno int32) {
	st.fail = true
	st.message = message
	st.errno = errno
}
