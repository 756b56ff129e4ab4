package magic

// Load activates the magic database at path, replacing the one loaded at
// Open. An empty path loads the installed library's default database.
// Loading a database does not touch the flag or parameter state.
func (s *Session) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return opError("load", ErrSessionClosed)
	}
	if s.lib.Load(s.cookie, coerceOptionalPath(path)) == -1 {
		return s.nativeError("load", ErrDatabaseLoad)
	}
	s.logger.Debug("magic: database loaded", "path", path)
	return nil
}

// LoadBuffers activates a database assembled from in-memory buffers,
// each holding the contents of one database file. It fails with
// ErrUnsupported on libmagic versions without magic_load_buffers.
func (s *Session) LoadBuffers(bufs [][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return opError("load_buffers", ErrSessionClosed)
	}
	if s.lib.LoadBuffers == nil {
		return opError("load_buffers", ErrUnsupported)
	}
	if s.lib.LoadBuffers(s.cookie, bufs) == -1 {
		return s.nativeError("load_buffers", ErrDatabaseLoad)
	}
	return nil
}

// Check validates the magic database at path. An empty path checks the
// default database.
func (s *Session) Check(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return opError("check", ErrSessionClosed)
	}
	if s.lib.Check(s.cookie, coerceOptionalPath(path)) == -1 {
		return s.nativeError("check", ErrDatabase)
	}
	return nil
}

// Compile compiles the magic database at path into a .mgc file in the
// current directory. An empty path compiles the default database.
func (s *Session) Compile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return opError("compile", ErrSessionClosed)
	}
	if s.lib.Compile(s.cookie, coerceOptionalPath(path)) == -1 {
		return s.nativeError("compile", ErrDatabase)
	}
	return nil
}

// List prints the entries of the magic database at path to stdout (the
// output channel is the native library's, not Go's). An empty path lists
// the default database.
func (s *Session) List(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return opError("list", ErrSessionClosed)
	}
	if s.lib.List(s.cookie, coerceOptionalPath(path)) == -1 {
		return s.nativeError("list", ErrDatabase)
	}
	return nil
}
