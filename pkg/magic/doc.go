// Package magic provides content-type detection backed by the native
// libmagic library. The library is located and loaded at runtime through
// the platform dynamic loader; no cgo is involved.
//
// A Session owns one native cookie. The native library forbids concurrent
// use of a cookie, so every Session operation is serialized behind an
// internal mutex; independent Sessions may be used concurrently from
// different goroutines. Callers that want parallel detection should open
// one Session per worker.
//
//	s, err := magic.Open(magic.Config{Flags: magic.MimeType})
//	if err != nil {
//		// handle
//	}
//	defer s.Close()
//
//	typ, err := s.FromFile("archive.tar.gz")
package magic
