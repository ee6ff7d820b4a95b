// Program bcopy copies a range of bytes from a file to another file or to
// stdout, using a bytechan.Channel.
//
// Usage:
//
//	bcopy [options] <source> [<dest>]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/creachadair/bytechan"
	"github.com/creachadair/bytechan/code"
	"github.com/creachadair/bytechan/metrics"
	"github.com/creachadair/bytechan/strategy"
)

var (
	offset      = flag.Int64("offset", 0, "Offset in the source at which to begin copying")
	count       = flag.Int64("count", -1, "Number of bytes to copy (-1 for all remaining)")
	readMode    = flag.String("r", "", "Copy by reading with this strategy instead of transferring")
	bufSize     = flag.Int("buf", 0, "Buffer size for reads and buffered transfers (0 for default)")
	withLogging = flag.Bool("v", false, "Enable verbose logging")
	printStats  = flag.Bool("stats", false, "Print channel statistics to stderr on exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %s [options] <source> [<dest>]

Copy bytes from the source file to dest, or to stdout if dest is omitted.

By default bytes are transferred directly from the source to the destination.
With -r, bytes are instead read through a channel using the named strategy
and written to the destination. The strategies are:

  direct     -- one read per buffer
  fill       -- fill each buffer before writing
  chunked:N  -- read at most N bytes at a time

The exit status classifies the failure, if any:
`, filepath.Base(os.Args[0]))
		for _, c := range []code.Code{code.EndOfStream, code.SystemError, code.Closed,
			code.InvalidHandle, code.InvalidArgument, code.Unsupported} {
			fmt.Fprintf(os.Stderr, "  %-3d -- %s\n", c, c)
		}
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		log.Fatal("Arguments are <source> [<dest>]")
	}

	m := metrics.New()
	opts := &bytechan.Options{Metrics: m, TransferBufferSize: *bufSize}
	if *withLogging {
		opts.LogWriter = os.Stderr
	}

	err := run(opts, flag.Args())
	if *printStats {
		printMetrics(m)
	}
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(int(code.FromError(err)))
	}
}

func run(opts *bytechan.Options, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	var dst io.WriteCloser = os.Stdout
	if len(args) == 2 {
		out, err := os.Create(args[1])
		if err != nil {
			f.Close()
			return err
		}
		dst = out
	}

	var rd bytechan.Reader
	if *readMode != "" {
		rd, err = readerStrategy(*readMode)
		if err != nil {
			f.Close()
			return err
		}
	}
	ch, err := bytechan.New(f, rd, nil, opts)
	if err != nil {
		f.Close()
		return err
	}

	if rd != nil {
		err = copyRead(ch, dst)
	} else {
		err = copyTransfer(ch, dst)
	}
	cerr := ch.Close()
	if dst != os.Stdout {
		cerr = errors.Join(cerr, dst.Close())
	}
	return errors.Join(err, cerr)
}

// copyTransfer copies the selected range using Transfer.
func copyTransfer(ch *bytechan.Channel, dst io.Writer) error {
	n := *count
	if n < 0 {
		n = math.MaxInt64 - max(*offset, 0)
	}
	_, err := ch.Transfer(*offset, n, dst)
	return err
}

// copyRead copies the selected range through the channel's Reader.
func copyRead(ch *bytechan.Channel, dst io.Writer) error {
	if *offset < 0 || *count < -1 {
		return fmt.Errorf("invalid range: %w", bytechan.ErrInvalidArgument)
	}
	if *offset > 0 {
		if _, err := io.CopyN(io.Discard, ch, *offset); err != nil && err != io.EOF {
			return err
		}
	}
	var src io.Reader = ch
	if *count >= 0 {
		src = io.LimitReader(ch, *count)
	}
	buf := make([]byte, max(*bufSize, 4096))
	_, err := io.CopyBuffer(dst, struct{ io.Reader }{src}, buf)
	return err
}

func readerStrategy(name string) (bytechan.Reader, error) {
	switch {
	case name == "direct":
		return strategy.Direct{}, nil
	case name == "fill":
		return strategy.Fill{}, nil
	case strings.HasPrefix(name, "chunked:"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "chunked:"))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid chunk size in %q: %w", name, bytechan.ErrInvalidArgument)
		}
		return strategy.Chunked{Size: n}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q: %w", name, bytechan.ErrInvalidArgument)
}

func printMetrics(m *metrics.M) {
	s := m.Snapshot()
	names := make([]string, 0, len(s.Counters))
	for name := range s.Counters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "%-28s %d", name, s.Counters[name])
		if v, ok := s.MaxValues[name]; ok {
			fmt.Fprintf(os.Stderr, " (max %d)", v)
		}
		fmt.Fprintln(os.Stderr)
	}
}
