package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "Old Town Road", "Old Town Road"},
		{"unicode unchanged", "Barış Manço", "Barış Manço"},
		{"tab kept", "a\tb", "a\tb"},
		{"escape removed", "a\x1b[31mb", "a[31mb"},
		{"newline removed", "line\nbreak", "linebreak"},
		{"invalid byte removed", "a\xffb", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exactly10!", 10, "exactly10!"},
		{"truncated", "Somewhere I Belong", 10, "Somewhe..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.width); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 5); got != "ab   " {
		t.Errorf("Pad = %q, want %q", got, "ab   ")
	}
	if got := Pad("toolong", 3); got != "toolong" {
		t.Errorf("Pad should not truncate, got %q", got)
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		input string
		width int
	}{
		{"a", 8},
		{"Somewhere I Belong", 8},
		{"Barış Manço", 12},
		{"", 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := TruncateAndPad(tt.input, tt.width)
			if w := runewidth.StringWidth(got); w != tt.width {
				t.Errorf("TruncateAndPad(%q, %d) width = %d", tt.input, tt.width, w)
			}
		})
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 12); got != "left   right" {
		t.Errorf("Row = %q", got)
	}
	if got := Row("left", "right", 4); got != "left right" {
		t.Errorf("Row should keep a one space gap, got %q", got)
	}
}

func TestSeparatorAndEmptyLine(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := EmptyLine(2); got != "  " {
		t.Errorf("EmptyLine(2) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}
