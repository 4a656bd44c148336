package ports

// GenerationRequest describes one dummy file to create. It is consumed once.
type GenerationRequest struct {
	Path       string   `validate:"required"`
	TotalBytes int64    `validate:"gte=0"`
	ChunkBytes int64    `validate:"gt=0"`
	FillMode   FillMode `validate:"oneof=zero random"`
}

// ProgressFunc receives the cumulative bytes written after every chunk.
// It is called from the writing goroutine and never concurrently.
type ProgressFunc func(bytesWritten, totalBytes int64)
