package resource

import "io"

// Pipe returns a pair of connected in-memory handles. Bytes written to a are
// read from b, and vice versa. Each write blocks until the peer has read all
// of the data written. Closing either handle causes reads on its peer to
// report io.EOF once buffered data are consumed, and causes writes on both
// ends toward the closed handle to fail.
func Pipe() (a, b io.ReadWriteCloser) {
	ar, bw := io.Pipe()
	br, aw := io.Pipe()
	return pipeEnd{r: ar, w: aw}, pipeEnd{r: br, w: bw}
}

// A pipeEnd is one end of a duplex pipe. It does not support seeking or
// positioned reads.
type pipeEnd struct {
	r *io.PipeReader
	w *io.PipeWriter
}

func (p pipeEnd) Read(buf []byte) (int, error)  { return p.r.Read(buf) }
func (p pipeEnd) Write(buf []byte) (int, error) { return p.w.Write(buf) }

// Close closes both halves of p.
func (p pipeEnd) Close() error {
	werr := p.w.Close()
	rerr := p.r.Close()
	if werr != nil {
		return werr
	}
	return rerr
}
