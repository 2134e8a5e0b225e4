package logstat

import (
	"io"
)

// ReadAutoCloser wraps an io.Reader, and closes it automatically, if closable,
// once it has been completely read. Log files are opened by sources and
// consumed by sinks, so nothing else would close them.
type ReadAutoCloser struct {
	r io.ReadCloser
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping r. If r is not an
// io.Closer, it is wrapped in a NopCloser.
func NewReadAutoCloser(r io.Reader) ReadAutoCloser {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return ReadAutoCloser{rc}
}

// Read reads up to len(b) bytes from the data source into b. At end of input,
// Read returns 0, io.EOF, and the data source is closed. A ReadAutoCloser with
// no data source behaves as if it were empty.
func (a ReadAutoCloser) Read(b []byte) (n int, err error) {
	if a.r == nil {
		return 0, io.EOF
	}
	n, err = a.r.Read(b)
	if err == io.EOF {
		a.Close()
	}
	return n, err
}

// Close closes the data source, if any.
func (a ReadAutoCloser) Close() error {
	if a.r == nil {
		return nil
	}
	return a.r.Close()
}
