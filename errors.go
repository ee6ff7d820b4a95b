package bytechan

import (
	"errors"
	"fmt"

	"github.com/creachadair/bytechan/code"
)

// Errors reported by channel operations. Use errors.Is to test for them,
// since they are usually wrapped in an *OpError.
var (
	// ErrInvalidHandle is reported by New when the resource handle is
	// missing or already closed.
	ErrInvalidHandle error = kindError{code.InvalidHandle, "invalid resource handle"}

	// ErrClosed is reported by any operation on a channel after it has been
	// closed, including a second call to Close.
	ErrClosed error = kindError{code.Closed, "channel is closed"}

	// ErrInvalidArgument is reported when an argument is out of range, such
	// as a negative transfer position or count.
	ErrInvalidArgument error = kindError{code.InvalidArgument, "invalid argument"}

	// ErrUnsupported is reported by Transfer when the resource supports
	// neither positioned reads nor seeking.
	ErrUnsupported error = kindError{code.Unsupported, "operation not supported"}
)

// kindError is the concrete type of the sentinel errors.
type kindError struct {
	code code.Code
	msg  string
}

func (e kindError) Error() string   { return e.msg }
func (e kindError) Code() code.Code { return e.code }

// An OpError records a failed channel operation. The underlying cause may be
// one of the sentinel errors above, or an error from the resource itself.
type OpError struct {
	Op  string // the operation: "read", "write", "transfer", "close", "stream"
	ID  uint64 // the ID of the channel reporting the error
	Err error  // the underlying cause
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("bytechan %d: %s: %v", e.ID, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error { return e.Err }

// Code reports the classification code for e. It satisfies code.Coder.
// Failures of the resource itself are classified as code.SystemError.
func (e *OpError) Code() code.Code {
	var c code.Coder
	if errors.As(e.Err, &c) {
		return c.Code()
	}
	return code.SystemError
}

func (c *Channel) opError(op string, err error) error {
	return &OpError{Op: op, ID: c.id, Err: err}
}
