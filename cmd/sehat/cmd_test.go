// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers mime detection and display truncation.
package main

import (
	"testing"
)

func TestMimeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"report.jpg", "image/jpeg", true},
		{"report.JPEG", "image/jpeg", true},
		{"scan.png", "image/png", true},
		{"scan.webp", "image/webp", true},
		{"labs.pdf", "application/pdf", true},
		{"notes.txt", "", false},
		{"noextension", "", false},
	}
	for _, tt := range tests {
		got, err := mimeFromPath(tt.path)
		if (err == nil) != tt.ok {
			t.Errorf("mimeFromPath(%q) error = %v, ok %v", tt.path, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("mimeFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate should not touch short strings, got %q", got)
	}
	got := truncate("a very long meal description that keeps going", 20)
	if len(got) > 23 { // 19 bytes + ellipsis rune
		t.Errorf("truncated string too long: %q", got)
	}
}
