package magic

// Version is the binding's own semantic version, populated at build time
// via ldflags. In development it defaults to v0.0.0-dev. The installed
// native library's version is Session.Version.
var Version = "v0.0.0-dev"

// WrapperVersion returns the binding's version string.
func WrapperVersion() string {
	return Version
}
