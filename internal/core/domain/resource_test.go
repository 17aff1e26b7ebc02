package domain

import (
	"errors"
	"testing"
)

func TestParseResourceCategory(t *testing.T) {
	for _, s := range []string{"educational", "guidelines", "forms", "training", "research", "policies"} {
		if _, err := ParseResourceCategory(s); err != nil {
			t.Errorf("ParseResourceCategory(%q) rejected a valid category: %v", s, err)
		}
	}
	if _, err := ParseResourceCategory("memes"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseResourceType(t *testing.T) {
	for _, s := range []string{"document", "video", "image", "link", "presentation"} {
		if _, err := ParseResourceType(s); err != nil {
			t.Errorf("ParseResourceType(%q) rejected a valid type: %v", s, err)
		}
	}
	if _, err := ParseResourceType("hologram"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseResourceLanguage(t *testing.T) {
	for _, s := range []string{"en", "sw", "both"} {
		if _, err := ParseResourceLanguage(s); err != nil {
			t.Errorf("ParseResourceLanguage(%q) rejected a valid language: %v", s, err)
		}
	}
	if _, err := ParseResourceLanguage("fr"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{2048000, "1.95 MB"},
		{1073741824, "1.00 GB"},
	}
	for _, tt := range tests {
		if got := FormatFileSize(tt.bytes); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
