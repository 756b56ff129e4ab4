package magic

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/filemagic/magic-go/internal/libmagic"
)

// Config carries the knobs for opening a Session.
type Config struct {
	// Flags is the initial detection flag bitmask.
	Flags Flag

	// Database is the path to a magic database file. Empty means the
	// default database of the installed library.
	Database string

	// Library optionally names the shared library to load (a soname or
	// an absolute path). Empty probes the platform defaults.
	Library string

	// Logger receives debug-level events for open, database load, and
	// close. Nil discards them.
	Logger *slog.Logger
}

// Session wraps one native libmagic cookie. The cookie is not safe for
// concurrent use, so every operation that touches it runs as a critical
// section under mu: acquire, invoke the native call, decode the result
// or error, release. Independent Sessions do not interfere.
type Session struct {
	lib    *libmagic.Lib
	logger *slog.Logger

	mu     sync.Mutex
	cookie uintptr
	flags  Flag
	closed bool
}

// Open loads the native library, allocates a cookie with cfg.Flags, and
// loads the magic database (cfg.Database, or the library default).
func Open(cfg Config) (*Session, error) {
	var names []string
	if cfg.Library != "" {
		names = []string{cfg.Library}
	}
	lib, err := libmagic.Load(names...)
	if err != nil {
		return nil, err
	}
	return newSession(lib, cfg)
}

// newSession is the seam between Open and the tests' fake Lib.
func newSession(lib *libmagic.Lib, cfg Config) (*Session, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cookie := lib.Open(int32(cfg.Flags))
	if cookie == 0 {
		return nil, fmt.Errorf("%w: flags %#x", ErrOpenFailed, int32(cfg.Flags))
	}

	s := &Session{lib: lib, logger: logger, cookie: cookie, flags: cfg.Flags}
	if err := s.Load(cfg.Database); err != nil {
		s.lib.Close(cookie)
		s.cookie = 0
		s.closed = true
		return nil, err
	}

	logger.Debug("magic: session opened", "flags", fmt.Sprintf("%#x", int32(cfg.Flags)), "database", cfg.Database)

	// Backstop for sessions dropped without Close. Timely release is
	// still the caller's job via defer s.Close().
	runtime.SetFinalizer(s, func(s *Session) { _ = s.Close() })
	return s, nil
}

// FromFile detects the content type of the file at path.
func (s *Session) FromFile(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", opError("file", ErrSessionClosed)
	}
	result, ok := s.lib.File(s.cookie, coercePath(path))
	if !ok {
		return "", s.nativeError("file", ErrDetection)
	}
	return result, nil
}

// FromBuffer detects the content type of an in-memory byte buffer. An
// empty buffer is valid input; libmagic reports an empty type for it.
func (s *Session) FromBuffer(buf []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", opError("buffer", ErrSessionClosed)
	}
	result, ok := s.lib.Buffer(s.cookie, buf)
	if !ok {
		return "", s.nativeError("buffer", ErrDetection)
	}
	return result, nil
}

// FromDescriptor detects the content type of an open file descriptor.
// The descriptor stays caller-owned; it is not closed by this call.
func (s *Session) FromDescriptor(fd int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", opError("descriptor", ErrSessionClosed)
	}
	result, ok := s.lib.Descriptor(s.cookie, int32(fd))
	if !ok {
		return "", s.nativeError("descriptor", ErrDetection)
	}
	return result, nil
}

// Version reports the installed libmagic version number (for example 545
// for 5.45). It is a library-level query: no cookie, no lock, and it
// never fails.
func (s *Session) Version() int {
	return int(s.lib.Version())
}

// Close releases the native cookie. It is idempotent: the first call
// closes, every later call is a no-op, and it never returns a non-nil
// error. Operations attempted after Close fail with ErrSessionClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	runtime.SetFinalizer(s, nil)
	s.lib.Close(s.cookie)
	s.cookie = 0
	s.closed = true
	s.logger.Debug("magic: session closed")
	return nil
}

// nativeError builds the structured error for a sentinel-valued native
// failure. It must run with s.mu held: magic_error and magic_errno
// report the most recent failing call on the cookie, and releasing the
// lock first would let another goroutine overwrite that state.
func (s *Session) nativeError(op string, kind error) error {
	return &Error{
		Op:      op,
		Kind:    kind,
		Message: s.lib.Error(s.cookie),
		Errno:   int(s.lib.Errno(s.cookie)),
	}
}

func opError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
