package diskspace

import (
	"path/filepath"

	"github.com/shirou/gopsutil/disk"

	"github.com/hailam/dummyfile/internal/ports"
)

// Probe reports free space through gopsutil.
type Probe struct{}

// NewProbe creates the free-space probe.
func NewProbe() ports.SpaceProbe {
	return &Probe{}
}

// Free returns the bytes available on the filesystem that will hold path.
// path itself does not need to exist yet.
func (p *Probe) Free(path string) (uint64, error) {
	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}
	usage, err := disk.Usage(dir)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}
