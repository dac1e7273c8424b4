package util

import (
	"testing"
)

func TestNilIfBlank(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }

	tests := []struct {
		name     string
		input    *string
		expected *string
	}{
		{name: "nil stays nil", input: nil, expected: nil},
		{name: "empty becomes nil", input: str(""), expected: nil},
		{name: "whitespace becomes nil", input: str("  \t\n"), expected: nil},
		{name: "value is trimmed", input: str("  Miso soup "), expected: str("Miso soup")},
		{name: "value kept", input: str("Ramen"), expected: str("Ramen")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NilIfBlank(tt.input)
			switch {
			case tt.expected == nil && got != nil:
				t.Fatalf("NilIfBlank() = %q, want nil", *got)
			case tt.expected != nil && got == nil:
				t.Fatalf("NilIfBlank() = nil, want %q", *tt.expected)
			case tt.expected != nil && *got != *tt.expected:
				t.Fatalf("NilIfBlank() = %q, want %q", *got, *tt.expected)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     string
		expected int64
		wantErr  bool
	}{
		{name: "plain number", size: "512", expected: 512},
		{name: "kilobytes", size: "100KB", expected: 100 * 1024},
		{name: "megabytes lower-case", size: "5mb", expected: 5 * 1024 * 1024},
		{name: "short unit", size: "2G", expected: 2 * 1024 * 1024 * 1024},
		{name: "empty", size: "", wantErr: true},
		{name: "no digits", size: "MB", wantErr: true},
		{name: "unknown unit", size: "3XB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseBytes(tt.size)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBytes(%q) expected error, got %d", tt.size, got)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseBytes(%q) unexpected error: %v", tt.size, err)
			}
			if got != tt.expected {
				t.Fatalf("ParseBytes(%q) = %d, want %d", tt.size, got, tt.expected)
			}
		})
	}
}
