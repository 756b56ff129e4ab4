package libmagic

// Lib holds the typed callables resolved from one loaded copy of the
// native library. The raw char* results returned by the detection and
// error entry points are owned by the cookie and only valid until the
// next call on it, so every string-producing callable copies into Go
// memory before returning. The boolean result distinguishes a native
// NULL (the failure sentinel) from a genuinely empty string.
//
// Callables backed by an optional symbol are nil when the installed
// library predates them.
type Lib struct {
	Open        func(flags int32) uintptr
	Close       func(cookie uintptr)
	Error       func(cookie uintptr) string
	Errno       func(cookie uintptr) int32
	Descriptor  func(cookie uintptr, fd int32) (string, bool)
	File        func(cookie uintptr, path []byte) (string, bool)
	Buffer      func(cookie uintptr, buf []byte) (string, bool)
	GetFlags    func(cookie uintptr) int32
	SetFlags    func(cookie uintptr, flags int32) int32
	Check       func(cookie uintptr, path []byte) int32
	Compile     func(cookie uintptr, path []byte) int32
	List        func(cookie uintptr, path []byte) int32
	Load        func(cookie uintptr, path []byte) int32
	LoadBuffers func(cookie uintptr, bufs [][]byte) int32
	GetParam    func(cookie uintptr, param int32, value *uint64) int32
	SetParam    func(cookie uintptr, param int32, value *uint64) int32
	Version     func() int32
}
