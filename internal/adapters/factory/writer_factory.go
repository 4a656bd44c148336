package factory

import (
	"math"

	"github.com/pkg/errors"

	"github.com/hailam/dummyfile/internal/adapters/file"
	"github.com/hailam/dummyfile/internal/ports"
)

// FileWriterFactory opens file.Writer instances on the local filesystem.
type FileWriterFactory struct{}

// NewFileWriterFactory creates the factory used by the front ends.
func NewFileWriterFactory() ports.WriterFactory {
	return &FileWriterFactory{}
}

// Open returns a ChunkWriter for path, truncating any existing content.
func (f *FileWriterFactory) Open(path string, bufferSize int64) (ports.ChunkWriter, error) {
	if bufferSize <= 0 || bufferSize > math.MaxInt {
		return nil, errors.Errorf("unsupported buffer size: %d", bufferSize)
	}
	w, err := file.NewWriter(path, int(bufferSize))
	if err != nil {
		return nil, err
	}
	return w, nil
}
