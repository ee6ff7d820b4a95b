// Package resource provides resource handles suitable for use with a
// bytechan.Channel, for resource kinds that the standard library does not
// provide directly.
package resource

import (
	"errors"
	"io"
	"io/fs"
)

// Memory is an in-memory random-access file. Like an *os.File, it has a
// single offset shared by Read, Write and Seek. A zero Memory is open and
// empty. The methods of a Memory are not safe for concurrent use.
type Memory struct {
	data   []byte
	off    int64
	closed bool
}

// NewMemory returns an open Memory whose initial contents are a copy of data,
// with its offset at the beginning.
func NewMemory(data []byte) *Memory {
	return &Memory{data: append([]byte(nil), data...)}
}

// IsOpen reports whether m has not been closed.
func (m *Memory) IsOpen() bool { return !m.closed }

// Bytes returns the current contents of m. The slice is valid until the next
// modification of m.
func (m *Memory) Bytes() []byte { return m.data }

// Len reports the current size of m in bytes.
func (m *Memory) Len() int { return len(m.data) }

// Read implements io.Reader.
func (m *Memory) Read(buf []byte) (int, error) {
	if m.closed {
		return 0, fs.ErrClosed
	}
	n, err := m.ReadAt(buf, m.off)
	m.off += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// ReadAt implements io.ReaderAt.
func (m *Memory) ReadAt(buf []byte, off int64) (int, error) {
	if m.closed {
		return 0, fs.ErrClosed
	} else if off < 0 {
		return 0, errors.New("resource: negative offset")
	} else if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(buf, m.data[off:])
	if n < len(buf) {
		return n, io.EOF
	}
	return n, nil
}

// Write implements io.Writer.
func (m *Memory) Write(buf []byte) (int, error) {
	n, err := m.WriteAt(buf, m.off)
	m.off += int64(n)
	return n, err
}

// WriteAt implements io.WriterAt. Writing past the end of m extends it,
// filling any gap with zeroes.
func (m *Memory) WriteAt(buf []byte, off int64) (int, error) {
	if m.closed {
		return 0, fs.ErrClosed
	} else if off < 0 {
		return 0, errors.New("resource: negative offset")
	}
	if end := off + int64(len(buf)); end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}
	return copy(m.data[off:], buf), nil
}

// Seek implements io.Seeker.
func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	if m.closed {
		return 0, fs.ErrClosed
	}
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.off + offset
	case io.SeekEnd:
		abs = int64(len(m.data)) + offset
	default:
		return 0, errors.New("resource: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("resource: negative position")
	}
	m.off = abs
	return abs, nil
}

// Close closes m. The contents of m remain available via Bytes, but all other
// operations report fs.ErrClosed, including a second Close.
func (m *Memory) Close() error {
	if m.closed {
		return fs.ErrClosed
	}
	m.closed = true
	return nil
}
