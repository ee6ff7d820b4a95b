package strategy_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/bytechan/strategy"
	"github.com/google/go-cmp/cmp"
)

type reader interface {
	Read([]byte, io.Reader) (int, error)
}

// readAll drains src through r using a buffer of the given size, and returns
// the sizes of each non-empty read along with the concatenated data.
func readAll(t *testing.T, r reader, src io.Reader, size int) ([]int, string) {
	t.Helper()
	var sizes []int
	var out strings.Builder
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf, src)
		if n > 0 {
			sizes = append(sizes, n)
			out.Write(buf[:n])
		}
		if err == io.EOF {
			return sizes, out.String()
		} else if err != nil {
			t.Fatalf("Read: unexpected error: %v", err)
		}
	}
}

func TestReaders(t *testing.T) {
	const input = "abcdefghijklmnopqrstuvwxyz"
	tests := []struct {
		name  string
		r     reader
		size  int
		sizes []int
	}{
		{"Direct", strategy.Direct{}, 10, []int{10, 10, 6}},
		{"Chunked", strategy.Chunked{Size: 4}, 10, []int{4, 4, 4, 4, 4, 4, 2}},
		{"ChunkedLarge", strategy.Chunked{Size: 100}, 10, []int{10, 10, 6}},
		{"ChunkedZero", strategy.Chunked{}, 13, []int{13, 13}},
		{"Fill", strategy.Fill{}, 8, []int{8, 8, 8, 2}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sizes, got := readAll(t, test.r, strings.NewReader(input), test.size)
			if got != input {
				t.Errorf("Data: got %q, want %q", got, input)
			}
			if diff := cmp.Diff(test.sizes, sizes); diff != "" {
				t.Errorf("Read sizes (-want, +got):\n%s", diff)
			}
		})
	}
}

// trickle accepts at most one byte per call.
type trickle struct{ bytes.Buffer }

func (t *trickle) Write(p []byte) (int, error) { return t.Buffer.Write(p[:min(1, len(p))]) }

// stuck accepts nothing and reports no error.
type stuck struct{}

func (stuck) Write([]byte) (int, error) { return 0, nil }

type failing struct{ after int }

func (f *failing) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("device on fire")
	}
	n := min(f.after, len(p))
	f.after -= n
	return n, nil
}

func TestWriters(t *testing.T) {
	const input = "the quick brown fox"

	t.Run("Direct", func(t *testing.T) {
		var buf trickle
		n, err := strategy.DirectWriter{}.Write([]byte(input), &buf)
		if err != nil || n != 1 {
			t.Errorf("Write: got (%d, %v), want (1, nil)", n, err)
		}
	})
	t.Run("Full", func(t *testing.T) {
		var buf trickle
		n, err := strategy.FullWriter{}.Write([]byte(input), &buf)
		if err != nil || n != len(input) {
			t.Errorf("Write: got (%d, %v), want (%d, nil)", n, err, len(input))
		}
		if got := buf.String(); got != input {
			t.Errorf("Output: got %q, want %q", got, input)
		}
	})
	t.Run("FullStuck", func(t *testing.T) {
		n, err := strategy.FullWriter{}.Write([]byte(input), stuck{})
		if !errors.Is(err, io.ErrShortWrite) || n != 0 {
			t.Errorf("Write: got (%d, %v), want (0, %v)", n, err, io.ErrShortWrite)
		}
	})
	t.Run("Chunked", func(t *testing.T) {
		var buf trickle
		n, err := strategy.ChunkedWriter{Size: 5}.Write([]byte(input), &buf)
		if err != nil || n != len(input) {
			t.Errorf("Write: got (%d, %v), want (%d, nil)", n, err, len(input))
		}
		if got := buf.String(); got != input {
			t.Errorf("Output: got %q, want %q", got, input)
		}
	})
	t.Run("ChunkedError", func(t *testing.T) {
		n, err := strategy.ChunkedWriter{Size: 4}.Write([]byte(input), &failing{after: 6})
		if err == nil || n != 6 {
			t.Errorf("Write: got (%d, %v), want (6, error)", n, err)
		}
	})
}
