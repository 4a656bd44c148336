package utils

import (
	"github.com/hailam/dummyfile/internal/ports"
	"github.com/hailam/dummyfile/internal/utils"
)

// UtilSizeParser adapts utils.ParseSize and utils.FormatSize to the ports.SizeParser interface.
type UtilSizeParser struct{}

// NewUtilSizeParser creates a new size parser adapter.
func NewUtilSizeParser() ports.SizeParser {
	return &UtilSizeParser{}
}

func (p *UtilSizeParser) Parse(spec string) (int64, bool) {
	return utils.ParseSize(spec)
}

func (p *UtilSizeParser) Format(bytes int64, decimalPlaces int) string {
	return utils.FormatSize(bytes, decimalPlaces)
}
