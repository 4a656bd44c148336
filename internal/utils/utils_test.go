package utils

import (
	"fmt"
	"math"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantOK   bool
	}{
		// Valid cases
		{"1.00B", 1, true},
		{"500B", 500, true},
		{"1.00KB", 1024, true},
		{"10kb", 10 * 1024, true},
		{"10 KB", 10 * 1024, true},
		{"1.00MB", 1_048_576, true},
		{"10.00MB", 10_485_760, true},
		{"1.5 GB", 1_610_612_736, true},
		{"1.00GB", 1_073_741_824, true},
		{"1.00TB", 1_099_511_627_776, true},
		{"1.00PB", 1_125_899_906_842_624, true},
		{"1,024KB", 1024 * 1024, true},
		{"0.5B", 0, true}, // truncated
		{"0KB", 0, true},
		{"  4MB  ", 4 * 1024 * 1024, true},

		// Invalid cases
		{"", 0, false},
		{"garbage", 0, false},
		{"500", 0, false},     // Unit is required
		{"10P", 0, false},     // Unknown suffix
		{"KB", 0, false},      // No number
		{"-100KB", 0, false},  // Sign is not part of the pattern
		{"1.2.3MB", 0, false}, // Not a number
		{".MB", 0, false},
		{",KB", 0, false},
		{"10 M B", 0, false},     // Space in suffix
		{"10MB extra", 0, false}, // Trailing text
		{"99999PB", 0, false},    // Overflows int64
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Input_%s", tc.input), func(t *testing.T) {
			got, ok := ParseSize(tc.input)

			if ok != tc.wantOK {
				t.Fatalf("ParseSize(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
			}
			if got != tc.expected {
				t.Errorf("ParseSize(%q) = %d, want %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes         int64
		decimalPlaces int
		expected      string
	}{
		{0, 1, "0.0 B"},
		{0, 0, "0 B"},
		{1, 1, "1.0 B"},
		{999, 1, "999.0 B"},
		{1023, 1, "1.0 KB"}, // 1023.0 B is past 1000
		{1024, 1, "1.0 KB"},
		{102_400, 1, "100.0 KB"},
		{1_048_576, 2, "1.00 MB"},
		{1_023_900, 1, "999.9 KB"},
		{1_023_990, 1, "1.0 MB"}, // would round to 1000.0 KB
		{int64(PB), 1, "1.0 PB"},
		{2000 * int64(PB), 1, "2,000.0 PB"}, // clamped to the largest unit
		{-102_400, 1, "-100.0 KB"},
		{1536, -3, "2 KB"},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Bytes_%d_%d", tc.bytes, tc.decimalPlaces), func(t *testing.T) {
			got := FormatSize(tc.bytes, tc.decimalPlaces)
			if got != tc.expected {
				t.Errorf("FormatSize(%d, %d) = %q, want %q", tc.bytes, tc.decimalPlaces, got, tc.expected)
			}
		})
	}

	t.Run("MinInt64", func(t *testing.T) {
		got := FormatSize(math.MinInt64, 1)
		if got != "-8,192.0 PB" {
			t.Errorf("FormatSize(MinInt64) = %q", got)
		}
	})
}

func TestParseFormatRoundTrip(t *testing.T) {
	inputs := []string{"1KB", "10MB", "1.5GB", "3TB", "7.25PB", "123B", "999KB", "100MB"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			first, ok := ParseSize(in)
			if !ok {
				t.Fatalf("ParseSize(%q) failed", in)
			}
			formatted := FormatSize(first, 1)
			second, ok := ParseSize(formatted)
			if !ok {
				t.Fatalf("ParseSize(%q) failed after formatting %d", formatted, first)
			}
			// one decimal place loses at most 0.05 of the chosen unit
			tolerance := float64(first) * 0.05
			if diff := math.Abs(float64(first - second)); diff > tolerance {
				t.Errorf("round trip %q -> %d -> %q -> %d, diff %.0f > %.0f", in, first, formatted, second, diff, tolerance)
			}
		})
	}
}
