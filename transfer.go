package bytechan

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/bytechan/strategy"
	"github.com/valyala/bytebufferpool"
)

// A Transferer is a resource that can copy a range of its own contents
// directly to a writer, without disturbing its current read offset.
// A Handle that implements Transferer is used by Channel.Transfer in
// preference to any other method.
type Transferer interface {
	TransferTo(position, count int64, dst io.Writer) (int64, error)
}

// Transfer copies up to count bytes beginning at offset position of the
// channel's resource to dst, bypassing the channel's Reader and Writer, and
// reports the number of bytes copied. If the resource holds fewer than
// position+count bytes, Transfer copies what is available and reports the
// shorter count without error. Transfer does not change the end-of-stream
// state of c, nor the resource's read offset.
//
// The copy is done by the first applicable method:
//
//   - If the handle implements Transferer, its TransferTo method.
//   - If the handle is an *os.File, a copy that lets the runtime use
//     copy_file_range or sendfile when dst is a file or socket.
//   - If the handle implements io.ReaderAt or io.Seeker, a buffered copy.
//
// Otherwise Transfer reports ErrUnsupported. A negative position or count is
// reported as ErrInvalidArgument. Transfer with count == 0 does nothing.
func (c *Channel) Transfer(position, count int64, dst io.Writer) (int64, error) {
	if c.closed {
		return 0, c.opError("transfer", ErrClosed)
	} else if position < 0 || count < 0 {
		return 0, c.opError("transfer", fmt.Errorf("%w: position %d, count %d", ErrInvalidArgument, position, count))
	} else if dst == nil {
		return 0, c.opError("transfer", fmt.Errorf("%w: nil destination", ErrInvalidArgument))
	} else if count == 0 {
		return 0, nil
	}
	nc, err := c.transfer(position, count, dst)
	if nc > 0 {
		c.metrics.Count("bytechan.bytes_transferred", nc)
	}
	if err != nil {
		return nc, c.opError("transfer", err)
	}
	return nc, nil
}

func (c *Channel) transfer(pos, count int64, dst io.Writer) (int64, error) {
	switch h := c.h.(type) {
	case Transferer:
		c.log("Channel %d: native transfer of %d bytes at %d", c.id, count, pos)
		return h.TransferTo(pos, count, dst)
	case *os.File:
		c.log("Channel %d: file transfer of %d bytes at %d", c.id, count, pos)
		return seekCopy(h, pos, count, func(r io.Reader) (int64, error) {
			return io.Copy(dst, r)
		})
	case io.ReaderAt:
		c.log("Channel %d: buffered transfer of %d bytes at %d", c.id, count, pos)
		return c.copyBuffered(dst, io.NewSectionReader(h, pos, count))
	case io.ReadSeeker:
		c.log("Channel %d: seek transfer of %d bytes at %d", c.id, count, pos)
		return seekCopy(h, pos, count, func(r io.Reader) (int64, error) {
			return c.copyBuffered(dst, r)
		})
	}
	return 0, ErrUnsupported
}

// seekCopy calls run with a reader for count bytes of rs beginning at pos,
// restoring the offset of rs afterward.
func seekCopy(rs io.ReadSeeker, pos, count int64, run func(io.Reader) (int64, error)) (_ int64, err error) {
	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	if _, err := rs.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	defer func() {
		if _, serr := rs.Seek(cur, io.SeekStart); serr != nil && err == nil {
			err = serr
		}
	}()
	return run(io.LimitReader(rs, count))
}

// copyBuffered copies src to dst until src is exhausted, through a pooled
// buffer holding at most c.bufSize bytes at a time.
func (c *Channel) copyBuffered(dst io.Writer, src io.Reader) (int64, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	var total int64
	for {
		bb.Reset()
		nr, err := bb.ReadFrom(io.LimitReader(src, int64(c.bufSize)))
		if nr > 0 {
			nw, werr := strategy.FullWriter{}.Write(bb.B, dst)
			total += int64(nw)
			if werr != nil {
				return total, werr
			}
		}
		if err != nil {
			return total, err
		} else if nr < int64(c.bufSize) {
			return total, nil // src is exhausted
		}
	}
}
