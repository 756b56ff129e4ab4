//go:build !(darwin || freebsd || linux || netbsd)

package libmagic

// Load fails on platforms without dlopen support in purego.
func Load(names ...string) (*Lib, error) {
	return nil, ErrPlatformUnsupported
}
