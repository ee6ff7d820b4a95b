package bytechan

import (
	"fmt"
	"io"
	"log"

	"github.com/creachadair/bytechan/metrics"
)

const logFlags = log.LstdFlags | log.Lshortfile

// DefaultTransferBufferSize is the size of the buffer used by Transfer when
// the resource does not support a direct copy.
const DefaultTransferBufferSize = 32 << 10

// Options control the behaviour of a channel created by New.
// A nil *Options provides sensible defaults.
type Options struct {
	// If not nil, send debug logs to this writer.
	LogWriter io.Writer

	// If not nil, this value is used to capture channel statistics.
	// A single collector may be shared among many channels.
	Metrics *metrics.M

	// The buffer size used by Transfer for resources that do not support a
	// direct copy. A value less than 1 uses DefaultTransferBufferSize.
	TransferBufferSize int
}

func (o *Options) logger() func(string, ...any) {
	if o == nil || o.LogWriter == nil {
		return func(string, ...any) {}
	}
	logger := log.New(o.LogWriter, "[bytechan] ", logFlags)
	return func(msg string, args ...any) { logger.Output(2, fmt.Sprintf(msg, args...)) }
}

func (o *Options) metrics() *metrics.M {
	if o == nil {
		return nil
	}
	return o.Metrics
}

func (o *Options) transferBufferSize() int {
	if o == nil || o.TransferBufferSize < 1 {
		return DefaultTransferBufferSize
	}
	return o.TransferBufferSize
}
