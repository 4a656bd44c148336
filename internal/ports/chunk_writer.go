package ports

//go:generate mockgen -source=chunk_writer.go -destination=../mocks/mock_chunk_writer.go -package=mocks

// ChunkWriter is the port for the single writer of one dummy file.
type ChunkWriter interface {
	// WriteZeroChunk writes n zero bytes and returns the bytes written.
	WriteZeroChunk(n int64) (int64, error)
	// WriteRandomChunk writes n bytes of random printable text and returns the bytes written.
	WriteRandomChunk(n int64) (int64, error)
	// Close flushes and releases the file. Calling it again is a no-op.
	Close() error
}
