package libmagic

import "reflect"

// specs declares the calling convention registered against each libmagic
// entry point: cookies and C string results travel as uintptr, char*
// arguments as []byte (a nil slice marshals to a native NULL pointer),
// and the getparam/setparam value as *uint64 (size_t on the 64-bit
// targets purego supports).
//
// Every symbol the binding resolves must have an entry here; registering
// an undeclared name fails with ErrUnknownSymbol.
var specs = map[string]reflect.Type{
	"magic_open":         reflect.TypeOf((func(int32) uintptr)(nil)),
	"magic_close":        reflect.TypeOf((func(uintptr))(nil)),
	"magic_error":        reflect.TypeOf((func(uintptr) uintptr)(nil)),
	"magic_errno":        reflect.TypeOf((func(uintptr) int32)(nil)),
	"magic_descriptor":   reflect.TypeOf((func(uintptr, int32) uintptr)(nil)),
	"magic_file":         reflect.TypeOf((func(uintptr, []byte) uintptr)(nil)),
	"magic_buffer":       reflect.TypeOf((func(uintptr, []byte, uintptr) uintptr)(nil)),
	"magic_getflags":     reflect.TypeOf((func(uintptr) int32)(nil)),
	"magic_setflags":     reflect.TypeOf((func(uintptr, int32) int32)(nil)),
	"magic_check":        reflect.TypeOf((func(uintptr, []byte) int32)(nil)),
	"magic_compile":      reflect.TypeOf((func(uintptr, []byte) int32)(nil)),
	"magic_list":         reflect.TypeOf((func(uintptr, []byte) int32)(nil)),
	"magic_load":         reflect.TypeOf((func(uintptr, []byte) int32)(nil)),
	"magic_load_buffers": reflect.TypeOf((func(uintptr, []uintptr, []uintptr, uintptr) int32)(nil)),
	"magic_getparam":     reflect.TypeOf((func(uintptr, int32, *uint64) int32)(nil)),
	"magic_setparam":     reflect.TypeOf((func(uintptr, int32, *uint64) int32)(nil)),
	"magic_version":      reflect.TypeOf((func() int32)(nil)),
}

// optional lists entry points that older libmagic releases do not export.
// Their absence leaves the corresponding Lib callable nil instead of
// failing Load; callers report ErrUnsupported per operation.
var optional = map[string]bool{
	"magic_getflags":     true,
	"magic_getparam":     true,
	"magic_setparam":     true,
	"magic_load_buffers": true,
}
