package magic

// Flag is the detection flag bitmask passed to magic_open and
// magic_setflags. Values match MAGIC_* in <magic.h>.
type Flag int32

const (
	// None requests the default, human-readable description.
	None Flag = 0x0000000

	// Debug turns on libmagic's own debugging output.
	Debug Flag = 0x0000001

	// Symlink follows symlinks instead of describing them.
	Symlink Flag = 0x0000002

	// Compress looks inside compressed files.
	Compress Flag = 0x0000004

	// Devices looks at the contents of block and character devices.
	Devices Flag = 0x0000008

	// MimeType reports a MIME type instead of a description.
	MimeType Flag = 0x0000010

	// Continue reports all matches, not just the first.
	Continue Flag = 0x0000020

	// Check prints warnings while parsing the magic database.
	Check Flag = 0x0000040

	// PreserveATime restores file access times after reading.
	PreserveATime Flag = 0x0000080

	// Raw disables translation of unprintable characters.
	Raw Flag = 0x0000100

	// ErrorFlag (MAGIC_ERROR) reports filesystem errors as errors
	// instead of embedding them in the result text.
	ErrorFlag Flag = 0x0000200

	// MimeEncoding reports a MIME encoding instead of a description.
	MimeEncoding Flag = 0x0000400

	// Mime reports "type; charset=encoding".
	Mime Flag = MimeType | MimeEncoding

	// Apple reports the Apple creator/type.
	Apple Flag = 0x0000800

	// Extension reports a slash-separated list of extensions.
	Extension Flag = 0x1000000

	// CompressTransp looks inside compressed files without reporting the
	// compression.
	CompressTransp Flag = 0x2000000

	// NoDesc is everything except the textual description.
	NoDesc Flag = Extension | Mime | Apple

	NoCheckCompress Flag = 0x0001000
	NoCheckTar      Flag = 0x0002000
	NoCheckSoft     Flag = 0x0004000
	NoCheckAppType  Flag = 0x0008000
	NoCheckELF      Flag = 0x0010000
	NoCheckText     Flag = 0x0020000
	NoCheckCDF      Flag = 0x0040000
	NoCheckCSV      Flag = 0x0080000
	NoCheckTokens   Flag = 0x0100000
	NoCheckEncoding Flag = 0x0200000
	NoCheckJSON     Flag = 0x0400000
	NoCheckSIMH     Flag = 0x0800000
)

// CachedFlags reports the client-side mirror of the flag bitmask: the
// value from Open or the last successful SetFlags/Flags call. It makes
// no native call, so it also works on libmagic versions without
// magic_getflags.
func (s *Session) CachedFlags() Flag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// Flags reports the session's current flag bitmask from the native
// layer and refreshes the cached mirror. It fails with ErrUnsupported on
// libmagic versions without magic_getflags.
func (s *Session) Flags() (Flag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, opError("getflags", ErrSessionClosed)
	}
	if s.lib.GetFlags == nil {
		return 0, opError("getflags", ErrUnsupported)
	}
	f := Flag(s.lib.GetFlags(s.cookie))
	s.flags = f
	return f, nil
}

// SetFlags replaces the session's flag bitmask. The cached mirror is
// updated only when the native layer accepts the new value.
func (s *Session) SetFlags(f Flag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return opError("setflags", ErrSessionClosed)
	}
	if s.lib.SetFlags(s.cookie, int32(f)) == -1 {
		return s.nativeError("setflags", ErrInvalidFlags)
	}
	s.flags = f
	return nil
}
