package util

import (
	"testing"
	"time"
)

func TestTimeify(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{time.Minute, "00:01:00"},
		{3599 * time.Second, "00:59:59"},
		{time.Hour, "01:00:00"},
		{3661*time.Second + 900*time.Millisecond, "01:01:01"},
		{-10 * time.Second, "00:00:00"}, // negative values clamp to 0
	}

	for _, tt := range tests {
		result := Timeify(tt.d)
		if result != tt.expected {
			t.Errorf("Timeify(%v) = %s; want %s", tt.d, result, tt.expected)
		}
	}
}

func TestSizeify(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{MiB, "1.00 MiB"},
		{MiB + MiB/2, "1.50 MiB"},
		{GiB, "1.00 GiB"},
		{TiB, "1.00 TiB"},
		{2 * TiB, "2.00 TiB"},
	}

	for _, tt := range tests {
		result := Sizeify(tt.size)
		if result != tt.expected {
			t.Errorf("Sizeify(%d) = %s; want %s", tt.size, result, tt.expected)
		}
	}
}

func TestCountify(t *testing.T) {
	tests := []struct {
		done, total int
		fraction    float32
		label       string
	}{
		{0, 0, 0, "0/0"},
		{0, 4, 0, "0/4"},
		{1, 4, 0.25, "1/4"},
		{4, 4, 1, "4/4"},
		{9, 4, 1, "4/4"},
		{-1, 4, 0, "0/4"},
	}

	for _, tt := range tests {
		f, label := Countify(tt.done, tt.total)
		if f != tt.fraction || label != tt.label {
			t.Errorf("Countify(%d, %d) = %v, %q; want %v, %q", tt.done, tt.total, f, label, tt.fraction, tt.label)
		}
	}
}

func TestPlural(t *testing.T) {
	if Plural(1, "file") != "1 file" || Plural(0, "file") != "0 files" || Plural(3, "file") != "3 files" {
		t.Error("unexpected Plural output")
	}
}
