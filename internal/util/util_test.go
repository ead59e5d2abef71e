package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "logo.png", expected: "logo.png"},
		{name: "spaces", input: "my logo.png", expected: "my_logo.png"},
		{name: "path traversal", input: "../../etc/passwd", expected: "passwd"},
		{name: "windows path", input: `C:\\Users\\a\\pic.jpg`, expected: "pic.jpg"},
		{name: "hidden file", input: ".env", expected: "env"},
		{name: "non ascii", input: "café.jpg", expected: "caf_.jpg"},
		{name: "empty", input: "", expected: "file"},
		{name: "dots only", input: "..", expected: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestNewObjectKey(t *testing.T) {
	t.Parallel()

	first := NewObjectKey("uploads/", "a b.png")
	second := NewObjectKey("uploads", "a b.png")

	require.True(t, strings.HasPrefix(first, "uploads/"))
	assert.True(t, strings.HasSuffix(first, "-a_b.png"))
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second, "keys are time ordered")

	assert.NotContains(t, NewObjectKey("", "x.png"), "/")
}
