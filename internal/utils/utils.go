package utils

import (
	"math"
	"math/bits"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ByteSize is a count of bytes. Units are binary (powers of 1024).
type ByteSize int64

const (
	B  ByteSize = 1
	KB ByteSize = 1 << (10 * iota)
	MB
	GB
	TB
	PB
)

// sizeSuffixes is indexed by power of 1024.
var sizeSuffixes = []string{"B", "KB", "MB", "GB", "TB", "PB"}

var sizePattern = regexp.MustCompile(`(?i)^([\d,.]+)\s*(B|KB|MB|GB|TB|PB)$`)

// ParseSize parses strings like "10MB", "1.5 GB" or "1,024KB" into a number of bytes.
// The unit is required and case-insensitive. Thousands separators (',') and a
// fractional part ('.') are accepted; the result is truncated to a whole byte.
// On any malformed input it returns (0, false).
func ParseSize(text string) (int64, bool) {
	m := sizePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, false
	}
	numPart := strings.ReplaceAll(m[1], ",", "")
	if numPart == "" || numPart == "." {
		return 0, false
	}
	number, err := strconv.ParseFloat(numPart, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}

	unitIndex := unitIndexOf(m[2])
	value := number * math.Pow(1024, float64(unitIndex))
	// 2^63 is the first float64 that no longer fits in an int64.
	if value >= math.Exp2(63) {
		return 0, false
	}
	return int64(value), true
}

// FormatSize renders bytes with the largest unit that keeps the value under
// 1000, using decimalPlaces digits after the decimal point ("100.0 KB").
// Negative decimalPlaces are treated as 0.
func FormatSize(bytes int64, decimalPlaces int) string {
	if decimalPlaces < 0 {
		decimalPlaces = 0
	}
	if bytes < 0 {
		// uint64 conversion keeps math.MinInt64 representable.
		return "-" + formatUnsigned(uint64(-(bytes+1))+1, decimalPlaces)
	}
	return formatUnsigned(uint64(bytes), decimalPlaces)
}

func formatUnsigned(value uint64, decimalPlaces int) string {
	if value == 0 {
		return formatNumber(0, decimalPlaces) + " " + sizeSuffixes[0]
	}

	// floor(log1024(value)) without float error
	mag := (63 - bits.LeadingZeros64(value)) / 10
	last := len(sizeSuffixes) - 1
	if mag > last {
		mag = last
	}
	adjusted := float64(value) / float64(uint64(1)<<(10*mag))

	// "1000.0 KB" reads better as "1.0 MB"
	scale := math.Pow10(decimalPlaces)
	if math.Round(adjusted*scale)/scale >= 1000 && mag < last {
		mag++
		adjusted /= 1024
	}
	return formatNumber(adjusted, decimalPlaces) + " " + sizeSuffixes[mag]
}

// formatNumber formats v with a fixed number of decimals and thousands separators.
func formatNumber(v float64, decimalPlaces int) string {
	s := strconv.FormatFloat(v, 'f', decimalPlaces, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}
	if !hasFrac {
		return humanize.Comma(n)
	}
	return humanize.Comma(n) + "." + fracPart
}

func unitIndexOf(unit string) int {
	unit = strings.ToUpper(unit)
	for i, s := range sizeSuffixes {
		if s == unit {
			return i
		}
	}
	return 0
}
