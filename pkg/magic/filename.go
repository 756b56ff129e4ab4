package magic

// coercePath converts a Go path to the NUL-terminated byte form the
// native layer expects. Go strings are raw bytes, so paths that are not
// valid UTF-8 pass through unmodified; the only transformation is the C
// terminator.
func coercePath(path string) []byte {
	return append([]byte(path), 0)
}

// coerceOptionalPath is coercePath with the empty string mapped to nil,
// which marshals to a native NULL pointer meaning "use the default
// database". It is never an empty C string, which would name a real
// (empty) path.
func coerceOptionalPath(path string) []byte {
	if path == "" {
		return nil
	}
	return coercePath(path)
}
