package ports

//go:generate mockgen -source=writer_factory.go -destination=../mocks/mock_writer_factory.go -package=mocks

// WriterFactory is the port for opening ChunkWriters.
type WriterFactory interface {
	// Open creates or truncates path and returns its writer.
	Open(path string, bufferSize int64) (ChunkWriter, error)
}

// SpaceProbe reports the free space available for a path.
type SpaceProbe interface {
	Free(path string) (uint64, error)
}
