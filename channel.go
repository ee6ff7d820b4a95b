package bytechan

import (
	"io"
	"sync/atomic"

	"github.com/creachadair/bytechan/metrics"
	"github.com/creachadair/bytechan/strategy"
)

// A Handle is an open byte-oriented resource, such as a file, a socket, or a
// pipe. A Handle may optionally implement:
//
//	IsOpen() bool    -- to report whether it is still usable
//	io.ReaderAt      -- to support Transfer with positioned reads
//	io.Seeker        -- to support Transfer by seeking
//	Transferer       -- to perform Transfer natively
type Handle = io.ReadWriteCloser

// A Reader reads bytes from a resource into buf and reports how many bytes
// were read. It returns io.EOF when no further data are available.
//
// A Reader must not retain buf or src after it returns. Implementations may
// be shared among channels, so they must not keep state about a particular
// resource.
type Reader interface {
	Read(buf []byte, src io.Reader) (int, error)
}

// A Writer writes bytes from buf to a resource and reports how many bytes
// were written. Like a Reader, a Writer may be shared among channels.
type Writer interface {
	Write(buf []byte, dst io.Writer) (int, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func([]byte, io.Reader) (int, error)

// Read implements the Reader interface by calling f.
func (f ReaderFunc) Read(buf []byte, src io.Reader) (int, error) { return f(buf, src) }

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func([]byte, io.Writer) (int, error)

// Write implements the Writer interface by calling f.
func (f WriterFunc) Write(buf []byte, dst io.Writer) (int, error) { return f(buf, dst) }

type opener interface {
	IsOpen() bool
}

var lastID atomic.Uint64

// A Channel reads and writes bytes on a single resource handle, which it
// owns. The mechanics of reading and writing are delegated to the Reader and
// Writer supplied when the channel is created; the channel itself tracks
// whether the resource has reached end of stream and whether it has been
// closed.
//
// The methods of a Channel are not safe for concurrent use. A channel must be
// used by at most one goroutine at a time.
type Channel struct {
	h      Handle
	reader Reader
	writer Writer

	id     uint64
	eof    bool // once set, never cleared
	closed bool

	log     func(string, ...any)
	metrics *metrics.M
	bufSize int
}

// New constructs a Channel that owns h and delegates reads to r and writes to
// w. If r == nil, the channel uses strategy.Direct; if w == nil it uses
// strategy.FullWriter.
//
// New reports ErrInvalidHandle if h == nil, or if h reports that it is not
// open. In that case no channel is created, and h is not closed.
func New(h Handle, r Reader, w Writer, opts *Options) (*Channel, error) {
	if h == nil {
		return nil, ErrInvalidHandle
	} else if o, ok := h.(opener); ok && !o.IsOpen() {
		return nil, ErrInvalidHandle
	}
	if r == nil {
		r = strategy.Direct{}
	}
	if w == nil {
		w = strategy.FullWriter{}
	}
	c := &Channel{
		h:       h,
		reader:  r,
		writer:  w,
		id:      lastID.Add(1),
		log:     opts.logger(),
		metrics: opts.metrics(),
		bufSize: opts.transferBufferSize(),
	}
	c.log("Opened channel %d on %T", c.id, h)
	c.metrics.Count("bytechan.channels_opened", 1)
	return c, nil
}

// ID reports a process-unique identifier for c, for use in diagnostics.
func (c *Channel) ID() uint64 { return c.id }

// Read reads up to len(buf) bytes from the resource using the channel's
// Reader, and reports the number of bytes read.
//
// When the Reader reports that no data were read (n <= 0) without an error
// other than io.EOF, the channel is marked as having reached the end of the
// stream, and Read returns 0, io.EOF. This holds even for resources where a
// non-positive count may conceal a transport problem. Any other error is
// reported as an *OpError and does not mark the end of the stream.
//
// If len(buf) == 0, Read returns 0, nil without calling the Reader.
func (c *Channel) Read(buf []byte) (int, error) {
	if c.closed {
		return 0, c.opError("read", ErrClosed)
	} else if len(buf) == 0 {
		return 0, nil
	}
	n, err := c.reader.Read(buf, c.h)
	if err != nil && err != io.EOF {
		c.metrics.Count("bytechan.read_errors", 1)
		return max(n, 0), c.opError("read", err)
	}
	if n <= 0 {
		if !c.eof {
			c.metrics.Count("bytechan.eof", 1)
		}
		c.eof = true
		return 0, io.EOF
	}
	c.metrics.CountAndSetMax("bytechan.bytes_read", int64(n))
	return n, nil
}

// HasReachedEnd reports whether a read on c has found the end of the stream.
// Once it reports true, it does so for the rest of the life of c.
func (c *Channel) HasReachedEnd() bool { return c.eof }

// Write writes the contents of buf to the resource using the channel's
// Writer, and reports the number of bytes written. Failures are reported as
// an *OpError.
func (c *Channel) Write(buf []byte) (int, error) {
	if c.closed {
		return 0, c.opError("write", ErrClosed)
	}
	n, err := c.writer.Write(buf, c.h)
	n = max(n, 0)
	if n > 0 {
		c.metrics.CountAndSetMax("bytechan.bytes_written", int64(n))
	}
	if err != nil {
		c.metrics.Count("bytechan.write_errors", 1)
		return n, c.opError("write", err)
	}
	return n, nil
}

// IsOpen reports whether c has not yet been closed.
func (c *Channel) IsOpen() bool { return !c.closed }

// Close releases the resource handle owned by c. After Close returns, c is
// closed even if releasing the handle reported an error, and the handle will
// not be released again.
//
// Calling Close on a closed channel does not touch the handle, and reports an
// error matching ErrClosed.
func (c *Channel) Close() error {
	if c.closed {
		c.log("Channel %d is already closed", c.id)
		return c.opError("close", ErrClosed)
	}
	c.closed = true
	c.metrics.Count("bytechan.channels_closed", 1)
	if err := c.h.Close(); err != nil {
		c.log("Error closing channel %d: %v", c.id, err)
		return c.opError("close", err)
	}
	c.log("Closed channel %d", c.id)
	return nil
}
