package magic

// Param identifies a numeric libmagic limit. Values match MAGIC_PARAM_*
// in <magic.h>. Parameter values travel as the native size_t, exposed
// here as uint64 (the binding only builds on 64-bit targets).
type Param int32

const (
	ParamIndirMax    Param = 0 // recursion limit for indirection
	ParamNameMax     Param = 1 // use limit for name/use magic
	ParamElfPhnumMax Param = 2 // max ELF program sections processed
	ParamElfShnumMax Param = 3 // max ELF sections processed
	ParamElfNotesMax Param = 4 // max ELF notes processed
	ParamRegexMax    Param = 5 // regex length limit
	ParamBytesMax    Param = 6 // max bytes read from a file
	ParamEncodingMax Param = 7 // max bytes scanned for encoding detection
)

// Param reports the current value of a numeric limit. It fails with
// ErrUnsupported on libmagic versions without magic_getparam.
func (s *Session) Param(p Param) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, opError("getparam", ErrSessionClosed)
	}
	if s.lib.GetParam == nil {
		return 0, opError("getparam", ErrUnsupported)
	}
	var v uint64
	if s.lib.GetParam(s.cookie, int32(p), &v) == -1 {
		return 0, s.nativeError("getparam", ErrInvalidParameter)
	}
	return v, nil
}

// SetParam updates a numeric limit.
func (s *Session) SetParam(p Param, value uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return opError("setparam", ErrSessionClosed)
	}
	if s.lib.SetParam == nil {
		return opError("setparam", ErrUnsupported)
	}
	v := value
	if s.lib.SetParam(s.cookie, int32(p), &v) == -1 {
		return s.nativeError("setparam", ErrInvalidParameter)
	}
	return nil
}
