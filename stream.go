package bytechan

import (
	"io"
	"iter"
)

// Stream returns a view of the channel's resource as an io.Reader, for use by
// code that expects a sequential stream rather than explicit buffer calls.
//
// The view reads directly from the resource: it does not use the channel's
// Reader, and does not affect the channel's end-of-stream state. The view is
// valid only while c is open; once c is closed, reads from the view report
// ErrClosed. Stream reports ErrClosed if c is already closed.
func (c *Channel) Stream() (*StreamView, error) {
	if c.closed {
		return nil, c.opError("stream", ErrClosed)
	} else if o, ok := c.h.(opener); ok && !o.IsOpen() {
		return nil, c.opError("stream", ErrClosed)
	}
	return &StreamView{c: c}, nil
}

// A StreamView is a read-only sequential view of a channel's resource.
// It does not own the resource, and does not close it.
type StreamView struct {
	c *Channel
}

// Read implements the io.Reader interface.
func (v *StreamView) Read(buf []byte) (int, error) {
	if v.c.closed {
		return 0, v.c.opError("stream", ErrClosed)
	}
	return v.c.h.Read(buf)
}

// Chunks returns a sequence of the remaining contents of the view, in chunks
// of at most size bytes. The sequence ends when the resource is exhausted, or
// after yielding the first error other than io.EOF. The sequence consumes the
// resource, so it cannot be restarted. The slice passed to each iteration is
// only valid until the next.
//
// Chunks panics if size < 1.
func (v *StreamView) Chunks(size int) iter.Seq2[[]byte, error] {
	if size < 1 {
		panic("bytechan: chunk size must be positive")
	}
	return func(yield func([]byte, error) bool) {
		buf := make([]byte, size)
		for {
			n, err := v.Read(buf)
			if n > 0 && !yield(buf[:n], nil) {
				return
			}
			if err == io.EOF {
				return
			} else if err != nil {
				yield(nil, err)
				return
			}
		}
	}
}
