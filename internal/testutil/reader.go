package testutil

import (
	"errors"
	"io"
)

// ErrRead is the failure injected by FaultyReader once its byte budget is
// spent. Tests match it with errors.Is.
var ErrRead = errors.New("injected read failure")

// FaultyReader yields at most limit bytes from src and then fails every
// subsequent Read with ErrRead.
type FaultyReader struct {
	src   io.Reader
	limit int
	read  int
}

// NewFaultyReader wraps src with a byte budget of limit.
func NewFaultyReader(src io.Reader, limit int) *FaultyReader {
	return &FaultyReader{src: src, limit: limit}
}

func (r *FaultyReader) Read(p []byte) (int, error) {
	if r.read >= r.limit {
		return 0, ErrRead
	}
	if rem := r.limit - r.read; len(p) > rem {
		p = p[:rem]
	}
	n, err := r.src.Read(p)
	r.read += n
	return n, err
}

// ChunkReader returns at most one byte per Read call, forcing buffered
// consumers through their refill paths, including mid-rune refills for
// multi-byte UTF-8 input.
type ChunkReader struct {
	src io.Reader
}

// NewChunkReader wraps src.
func NewChunkReader(src io.Reader) *ChunkReader {
	return &ChunkReader{src: src}
}

func (r *ChunkReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return r.src.Read(p)
}
