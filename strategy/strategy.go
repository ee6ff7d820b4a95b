// Package strategy provides reader and writer strategies for use with a
// bytechan.Channel.
//
// A strategy implements the mechanics of moving bytes between a buffer and a
// resource handle. Strategies hold only their own configuration, so a single
// value may be shared by any number of channels.
package strategy

import "io"

// Direct is a reader strategy that issues a single Read on the source.
type Direct struct{}

// Read implements the bytechan.Reader interface.
func (Direct) Read(buf []byte, src io.Reader) (int, error) { return src.Read(buf) }

// Chunked is a reader strategy that reads at most Size bytes per call.
// A Size less than 1 behaves like Direct.
type Chunked struct {
	Size int
}

// Read implements the bytechan.Reader interface.
func (c Chunked) Read(buf []byte, src io.Reader) (int, error) {
	if c.Size > 0 && len(buf) > c.Size {
		buf = buf[:c.Size]
	}
	return src.Read(buf)
}

// Fill is a reader strategy that reads until buf is full or the source is
// exhausted. A short read at the end of the source is reported without error;
// the following call reports io.EOF.
type Fill struct{}

// Read implements the bytechan.Reader interface.
func (Fill) Read(buf []byte, src io.Reader) (int, error) {
	n, err := io.ReadFull(src, buf)
	if err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}

// DirectWriter is a writer strategy that issues a single Write on the
// destination.
type DirectWriter struct{}

// Write implements the bytechan.Writer interface.
func (DirectWriter) Write(buf []byte, dst io.Writer) (int, error) { return dst.Write(buf) }

// ChunkedWriter is a writer strategy that writes buf in slices of at most
// Size bytes, stopping at the first error. A Size less than 1 behaves like
// FullWriter.
type ChunkedWriter struct {
	Size int
}

// Write implements the bytechan.Writer interface.
func (c ChunkedWriter) Write(buf []byte, dst io.Writer) (int, error) {
	if c.Size < 1 {
		return FullWriter{}.Write(buf, dst)
	}
	var nw int
	for nw < len(buf) {
		end := min(nw+c.Size, len(buf))
		n, err := FullWriter{}.Write(buf[nw:end], dst)
		nw += n
		if err != nil {
			return nw, err
		}
	}
	return nw, nil
}

// FullWriter is a writer strategy that writes until all of buf has been
// accepted by the destination. A write that makes no progress without
// reporting an error is reported as io.ErrShortWrite.
type FullWriter struct{}

// Write implements the bytechan.Writer interface.
func (FullWriter) Write(buf []byte, dst io.Writer) (int, error) {
	var nw int
	for nw < len(buf) {
		n, err := dst.Write(buf[nw:])
		if n < 0 || n > len(buf)-nw {
			return nw, io.ErrShortWrite
		}
		nw += n
		if err != nil {
			return nw, err
		} else if n == 0 {
			return nw, io.ErrShortWrite
		}
	}
	return nw, nil
}
