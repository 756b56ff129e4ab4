//go:build darwin || freebsd || linux || netbsd

package libmagic

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// defaultNames returns the sonames probed when the caller does not name
// the library explicitly. Plain sonames defer to the loader's own search
// path; the darwin entries additionally cover the usual homebrew prefixes
// that are absent from the default dyld path.
func defaultNames() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"libmagic.dylib",
			"/opt/homebrew/lib/libmagic.dylib",
			"/usr/local/lib/libmagic.dylib",
		}
	case "freebsd", "netbsd":
		return []string{"libmagic.so.4", "libmagic.so"}
	default:
		return []string{"libmagic.so.1", "libmagic.so"}
	}
}

// Load opens the native library and resolves every entry point in the
// signature table. With no arguments it probes the platform defaults;
// explicit names (sonames or absolute paths) are tried in order instead.
//
// Each Load opens an independent handle; repeat loads are cheap because
// the platform loader reference-counts shared objects. The handle is
// never dlclosed — resolved callables stay valid for the process
// lifetime, matching how the loader itself treats the library.
func Load(names ...string) (*Lib, error) {
	if len(names) == 0 {
		names = defaultNames()
	}

	var handle uintptr
	var probeErrs []error
	for _, name := range names {
		h, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_LOCAL)
		if err == nil {
			handle = h
			break
		}
		probeErrs = append(probeErrs, fmt.Errorf("%s: %w", name, err))
	}
	if handle == 0 {
		return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.Join(probeErrs...))
	}

	return bind(handle)
}

// register resolves one symbol and binds it to fnPtr, first checking the
// declared signature against the table. It reports found=false without
// error for an absent optional symbol.
func register(handle uintptr, name string, fnPtr any) (found bool, err error) {
	want, ok := specs[name]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownSymbol, name)
	}
	if got := reflect.TypeOf(fnPtr).Elem(); got != want {
		return false, fmt.Errorf("%w: %s declared as %v, registered as %v", ErrUnknownSymbol, name, want, got)
	}
	addr, dlerr := purego.Dlsym(handle, name)
	if dlerr != nil || addr == 0 {
		if optional[name] {
			return false, nil
		}
		return false, fmt.Errorf("%w: %s", ErrSymbolMissing, name)
	}
	purego.RegisterFunc(fnPtr, addr)
	return true, nil
}

// raw mirrors the signature table one field per symbol. The semantic
// wrappers on Lib are built on top of these.
type raw struct {
	open        func(int32) uintptr
	close       func(uintptr)
	error       func(uintptr) uintptr
	errno       func(uintptr) int32
	descriptor  func(uintptr, int32) uintptr
	file        func(uintptr, []byte) uintptr
	buffer      func(uintptr, []byte, uintptr) uintptr
	getflags    func(uintptr) int32
	setflags    func(uintptr, int32) int32
	check       func(uintptr, []byte) int32
	compile     func(uintptr, []byte) int32
	list        func(uintptr, []byte) int32
	load        func(uintptr, []byte) int32
	loadBuffers func(uintptr, []uintptr, []uintptr, uintptr) int32
	getparam    func(uintptr, int32, *uint64) int32
	setparam    func(uintptr, int32, *uint64) int32
	version     func() int32
}

func bind(handle uintptr) (*Lib, error) {
	var r raw
	mandatory := []struct {
		name string
		fn   any
	}{
		{"magic_open", &r.open},
		{"magic_close", &r.close},
		{"magic_error", &r.error},
		{"magic_errno", &r.errno},
		{"magic_descriptor", &r.descriptor},
		{"magic_file", &r.file},
		{"magic_buffer", &r.buffer},
		{"magic_setflags", &r.setflags},
		{"magic_check", &r.check},
		{"magic_compile", &r.compile},
		{"magic_list", &r.list},
		{"magic_load", &r.load},
		{"magic_version", &r.version},
	}
	for _, m := range mandatory {
		if _, err := register(handle, m.name, m.fn); err != nil {
			return nil, err
		}
	}

	hasGetFlags, err := register(handle, "magic_getflags", &r.getflags)
	if err != nil {
		return nil, err
	}
	hasLoadBuffers, err := register(handle, "magic_load_buffers", &r.loadBuffers)
	if err != nil {
		return nil, err
	}
	hasGetParam, err := register(handle, "magic_getparam", &r.getparam)
	if err != nil {
		return nil, err
	}
	hasSetParam, err := register(handle, "magic_setparam", &r.setparam)
	if err != nil {
		return nil, err
	}

	lib := &Lib{
		Open:  r.open,
		Close: r.close,
		Error: func(cookie uintptr) string {
			return goString(r.error(cookie))
		},
		Errno: r.errno,
		Descriptor: func(cookie uintptr, fd int32) (string, bool) {
			return decode(r.descriptor(cookie, fd))
		},
		File: func(cookie uintptr, path []byte) (string, bool) {
			return decode(r.file(cookie, path))
		},
		Buffer: func(cookie uintptr, buf []byte) (string, bool) {
			return decode(r.buffer(cookie, buf, uintptr(len(buf))))
		},
		SetFlags: r.setflags,
		Check:    r.check,
		Compile:  r.compile,
		List:     r.list,
		Load:     r.load,
		Version:  r.version,
	}
	if hasGetFlags {
		lib.GetFlags = r.getflags
	}
	if hasGetParam {
		lib.GetParam = r.getparam
	}
	if hasSetParam {
		lib.SetParam = r.setparam
	}
	if hasLoadBuffers {
		lib.LoadBuffers = func(cookie uintptr, bufs [][]byte) int32 {
			ptrs := make([]uintptr, len(bufs))
			sizes := make([]uintptr, len(bufs))
			for i, b := range bufs {
				if len(b) > 0 {
					ptrs[i] = uintptr(unsafe.Pointer(&b[0]))
				}
				sizes[i] = uintptr(len(b))
			}
			rc := r.loadBuffers(cookie, ptrs, sizes, uintptr(len(bufs)))
			runtime.KeepAlive(bufs)
			return rc
		}
	}
	return lib, nil
}

// decode copies a cookie-owned char* result into a Go string. The native
// pointer is only valid until the next call on the same cookie, so the
// copy must happen before the caller's critical section ends. A NULL
// result (the failure sentinel) is reported as ok=false.
func decode(p uintptr) (string, bool) {
	if p == 0 {
		return "", false
	}
	return goString(p), true
}

// goString copies a NUL-terminated C string into Go memory. purego's own
// string marshaling is not used for results because it cannot tell a
// NULL pointer apart from an empty string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
