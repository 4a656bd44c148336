package file

import (
	"bufio"
	"os"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/hailam/dummyfile/internal/generators"
	"github.com/hailam/dummyfile/internal/ports"
	"github.com/hailam/dummyfile/internal/utils"
)

// MaxBufferSize caps the bufio buffer; larger chunks are streamed through it.
const MaxBufferSize = int(64 * utils.MB)

const zeroBlockSize = 64 * 1024

var zeroBlock = make([]byte, zeroBlockSize)

// ErrClosed is returned by writes issued after Close.
var ErrClosed = errors.New("writer is closed")

// Writer owns the output file of one generation and its buffered writer.
type Writer struct {
	path   string
	f      *os.File
	w      *bufio.Writer
	closed atomic.Bool
}

// NewWriter creates or truncates path and wraps it in a buffer of bufferSize bytes.
func NewWriter(path string, bufferSize int) (*Writer, error) {
	if bufferSize <= 0 {
		return nil, errors.Errorf("buffer size must be positive, got %d", bufferSize)
	}
	if bufferSize > MaxBufferSize {
		bufferSize = MaxBufferSize
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create dummy file: %s", path)
	}
	return &Writer{
		path: path,
		f:    f,
		w:    bufio.NewWriterSize(f, bufferSize),
	}, nil
}

var _ ports.ChunkWriter = (*Writer)(nil)

func (w *Writer) WriteZeroChunk(n int64) (int64, error) {
	if w.closed.Load() {
		return 0, ErrClosed
	}
	var written int64
	for written < n {
		toWrite := int64(zeroBlockSize)
		if n-written < toWrite {
			toWrite = n - written
		}
		m, err := w.w.Write(zeroBlock[:toWrite])
		written += int64(m)
		if err != nil {
			return written, errors.Wrapf(err, "could not write zeros to %s", w.path)
		}
	}
	return written, nil
}

// WriteRandomChunk writes n characters of random text in pieces of at most
// generators.MaxTextLength, a quarter of each piece being punctuation.
// Every character is ASCII, so n characters are n bytes.
func (w *Writer) WriteRandomChunk(n int64) (int64, error) {
	if w.closed.Load() {
		return 0, ErrClosed
	}
	var written int64
	for written < n {
		subLen := int64(generators.MaxTextLength)
		if n-written < subLen {
			subLen = n - written
		}
		text, err := generators.GenerateText(int(subLen), int(subLen)/4)
		if err != nil {
			return written, err
		}
		m, err := w.w.WriteString(text)
		written += int64(m)
		if err != nil {
			return written, errors.Wrapf(err, "could not write random text to %s", w.path)
		}
	}
	return written, nil
}

// Close flushes the buffer and closes the file. Only the first call does any
// work; later calls return nil.
func (w *Writer) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return nil
	}
	flushErr := w.w.Flush()
	closeErr := w.f.Close()
	if flushErr != nil {
		return errors.Wrapf(flushErr, "could not flush %s", w.path)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "could not close %s", w.path)
	}
	return nil
}

// Path returns the file being written.
func (w *Writer) Path() string {
	return w.path
}
