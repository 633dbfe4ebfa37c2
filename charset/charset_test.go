package charset

import (
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func TestLookupDefault(t *testing.T) {
	e, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup(\"\"): %v", err)
	}
	if e != unicode.UTF8 {
		t.Fatalf("empty name should resolve to UTF-8")
	}
}

func TestLookupKnownNames(t *testing.T) {
	for _, name := range []string{"UTF-8", "utf-8", "ISO-8859-1", "latin1", "windows-1252"} {
		e, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if e == nil {
			t.Fatalf("Lookup(%q) returned nil encoding", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("NOT-A-CHARSET"); err == nil {
		t.Fatalf("expected error for unknown charset")
	}
}

func TestNameRoundTrip(t *testing.T) {
	e, err := Lookup("ISO-8859-1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got := Name(e); got != "ISO-8859-1" {
		t.Fatalf("Name = %q, want ISO-8859-1", got)
	}
}
