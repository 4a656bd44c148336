package ports

// SizeParser parses human-readable size specs (like "10MB") into bytes and back.
type SizeParser interface {
	// Parse returns ok=false and 0 bytes for malformed input.
	Parse(spec string) (int64, bool)
	Format(bytes int64, decimalPlaces int) string
}
