package magic

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// openReal opens a session against the installed libmagic, skipping the
// test on machines without it.
func openReal(t *testing.T, cfg Config) *Session {
	t.Helper()
	s, err := Open(cfg)
	if err != nil {
		if errors.Is(err, ErrLibraryNotFound) || errors.Is(err, ErrPlatformUnsupported) || errors.Is(err, ErrDatabaseLoad) {
			t.Skipf("libmagic unavailable: %v", err)
		}
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestIntegrationBufferPDF(t *testing.T) {
	s := openReal(t, Config{})

	got, err := s.FromBuffer([]byte("%PDF-1.4\n%fake minimal document"))
	if err != nil {
		t.Fatalf("FromBuffer: %v", err)
	}
	if !strings.Contains(got, "PDF") {
		t.Errorf("FromBuffer(%%PDF-1.4...) = %q, want a PDF description", got)
	}
}

func TestIntegrationBufferEmpty(t *testing.T) {
	s := openReal(t, Config{})

	got, err := s.FromBuffer([]byte{})
	if err != nil {
		t.Fatalf("FromBuffer(empty): %v", err)
	}
	if got == "" {
		t.Error("empty buffer should produce a generic type string")
	}
}

func TestIntegrationMimeFlag(t *testing.T) {
	s := openReal(t, Config{Flags: MimeType})

	got, err := s.FromBuffer([]byte("%PDF-1.4\n"))
	if err != nil {
		t.Fatalf("FromBuffer: %v", err)
	}
	if got != "application/pdf" {
		t.Errorf("FromBuffer = %q, want application/pdf", got)
	}
}

func TestIntegrationFromFile(t *testing.T) {
	s := openReal(t, Config{})

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if !strings.Contains(got, "PDF") {
		t.Errorf("FromFile = %q, want a PDF description", got)
	}
}

func TestIntegrationFromDescriptor(t *testing.T) {
	s := openReal(t, Config{})

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := s.FromDescriptor(int(f.Fd()))
	if err != nil {
		t.Fatalf("FromDescriptor: %v", err)
	}
	if !strings.Contains(got, "PDF") {
		t.Errorf("FromDescriptor = %q, want a PDF description", got)
	}

	// the descriptor stays caller-owned and usable
	if _, err := f.Stat(); err != nil {
		t.Errorf("descriptor unusable after FromDescriptor: %v", err)
	}
}

func TestIntegrationLoadMissingDatabase(t *testing.T) {
	s := openReal(t, Config{})

	err := s.Load(filepath.Join(t.TempDir(), "missing.mgc"))
	if !errors.Is(err, ErrDatabaseLoad) {
		t.Fatalf("err = %v, want ErrDatabaseLoad", err)
	}
	var me *Error
	if errors.As(err, &me) && me.Message == "" && me.Errno == 0 {
		t.Error("expected native diagnostics on the load failure")
	}
}

func TestIntegrationVersion(t *testing.T) {
	s := openReal(t, Config{})

	v := s.Version()
	if v <= 0 {
		t.Fatalf("Version = %d, want positive", v)
	}
	if again := s.Version(); again != v {
		t.Errorf("Version unstable: %d then %d", v, again)
	}
}

func TestIntegrationIndependentSessions(t *testing.T) {
	a := openReal(t, Config{Flags: MimeType})
	b := openReal(t, Config{})

	mime, err := a.FromBuffer([]byte("%PDF-1.4\n"))
	if err != nil {
		t.Fatal(err)
	}
	desc, err := b.FromBuffer([]byte("%PDF-1.4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if mime == desc {
		t.Errorf("sessions share flag state: both returned %q", mime)
	}
}
