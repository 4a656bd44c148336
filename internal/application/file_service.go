package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hailam/dummyfile/internal/ports"
)

// DefaultBufferSize is the chunk size used when the caller does not pick one.
const DefaultBufferSize = "10MB"

// ErrInvalidArgument is returned before any file is touched when a size or
// request field is unusable.
var ErrInvalidArgument = errors.New("invalid argument")

// FileService orchestrates dummy file generation: it parses sizes, opens a
// writer for the target path and fills it chunk by chunk.
type FileService struct {
	factory  ports.WriterFactory
	parser   ports.SizeParser
	probe    ports.SpaceProbe
	validate *validator.Validate
	logger   *slog.Logger
}

// Option customises a FileService.
type Option func(*FileService)

// WithSpaceProbe enables the pre-flight free-space warning.
func WithSpaceProbe(probe ports.SpaceProbe) Option {
	return func(s *FileService) { s.probe = probe }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *FileService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFileService constructs a FileService with the given factory and parser.
func NewFileService(factory ports.WriterFactory, parser ports.SizeParser, opts ...Option) *FileService {
	s := &FileService{
		factory:  factory,
		parser:   parser,
		validate: validator.New(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateFile generates a file at outPath of size totalSize (e.g. "100MB"),
// writing bufferSize bytes per chunk. onProgress may be nil.
func (s *FileService) CreateFile(outPath, totalSize, bufferSize string, fillWithZeros bool, onProgress ports.ProgressFunc) error {
	// 1. Parse human-readable sizes into bytes
	totalBytes, ok := s.parser.Parse(totalSize)
	if !ok {
		return fmt.Errorf("%w: totalSize '%s' is not a valid size", ErrInvalidArgument, totalSize)
	}
	chunkBytes, ok := s.parser.Parse(bufferSize)
	if !ok {
		return fmt.Errorf("%w: bufferSize '%s' is not a valid size", ErrInvalidArgument, bufferSize)
	}
	if chunkBytes <= 0 {
		return fmt.Errorf("%w: bufferSize '%s' must be greater than zero", ErrInvalidArgument, bufferSize)
	}

	return s.CreateFileBytes(ports.GenerationRequest{
		Path:       outPath,
		TotalBytes: totalBytes,
		ChunkBytes: chunkBytes,
		FillMode:   ports.FillModeOf(fillWithZeros),
	}, onProgress)
}

// CreateFileBytes generates the file described by an already parsed request.
// The file is truncated first. A write failure stops the loop and leaves
// whatever was already flushed on disk.
func (s *FileService) CreateFileBytes(req ports.GenerationRequest, onProgress ports.ProgressFunc) (err error) {
	if err := s.validateRequest(req); err != nil {
		return err
	}

	log := s.logger.With("path", req.Path)
	log.Debug("creating dummy file",
		"total", s.parser.Format(req.TotalBytes, 1),
		"chunk", s.parser.Format(req.ChunkBytes, 1),
		"mode", req.FillMode)
	s.checkFreeSpace(log, req)

	// 2. Open the writer; it is closed on every exit path below
	w, err := s.factory.Open(req.Path, req.ChunkBytes)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", req.Path, err)
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to finalize %s: %w", req.Path, closeErr)
		}
	}()

	// 3. Write chunks until the target is reached
	start := time.Now()
	var written int64
	for written < req.TotalBytes {
		chunk := min(req.ChunkBytes, req.TotalBytes-written)

		var n int64
		if req.FillMode == ports.FillModeZero {
			n, err = w.WriteZeroChunk(chunk)
		} else {
			n, err = w.WriteRandomChunk(chunk)
		}
		written += n
		if err != nil {
			log.Error("chunk write failed", "written", written, "error", err)
			return fmt.Errorf("failed to generate %s after %d bytes: %w", req.Path, written, err)
		}
		if n <= 0 {
			return fmt.Errorf("failed to generate %s: writer made no progress at %d bytes", req.Path, written)
		}

		if onProgress != nil {
			onProgress(written, req.TotalBytes)
		}
	}

	log.Info("dummy file created",
		"size", s.parser.Format(written, 1),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// CreateFileAsync runs CreateFile on its own goroutine. The returned channel
// receives the result once and is then closed. onProgress is called from
// that goroutine.
func (s *FileService) CreateFileAsync(outPath, totalSize, bufferSize string, fillWithZeros bool, onProgress ports.ProgressFunc) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- s.CreateFile(outPath, totalSize, bufferSize, fillWithZeros, onProgress)
	}()
	return done
}

func (s *FileService) validateRequest(req ports.GenerationRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%w: %s fails '%s' (got %v)", ErrInvalidArgument, fe.Field(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
}

func (s *FileService) checkFreeSpace(log *slog.Logger, req ports.GenerationRequest) {
	if s.probe == nil || req.TotalBytes == 0 {
		return
	}
	free, err := s.probe.Free(req.Path)
	if err != nil {
		log.Debug("free space probe failed", "error", err)
		return
	}
	if free < uint64(req.TotalBytes) {
		log.Warn("not enough free space, the write is likely to fail",
			"requested", s.parser.Format(req.TotalBytes, 1),
			"free", s.parser.Format(int64(min(free, uint64(1<<62))), 1))
	}
}
