package catalog

import (
	"io"
	"os"
)

// Source is a readable, line-oriented catalog input.
type Source interface {
	// Name identifies the source in diagnostics and logs.
	Name() string
	// Open returns a fresh reader positioned at the start of the source.
	Open() (io.ReadCloser, error)
}

type fileSource string

// FileSource returns a Source backed by the file at path.
func FileSource(path string) Source {
	return fileSource(path)
}

func (f fileSource) Name() string { return string(f) }

func (f fileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

type readerSource struct {
	name string
	r    io.Reader
}

// ReaderSource wraps an already open reader. The reader is consumed by the
// first load that uses it.
func ReaderSource(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

func (s *readerSource) Name() string { return s.name }

func (s *readerSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}
