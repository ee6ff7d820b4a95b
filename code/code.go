// Package code defines classification codes for errors reported by the
// bytechan package.
//
// A caller that must surface a distinguishable condition to some other layer
// (for example a host runtime that reports integer status values) can use
// FromError to map any error returned by a channel onto a Code.
package code

import (
	"errors"
	"fmt"
	"io"
)

// A Code classifies an error condition reported by a channel.
//
// Code values from 0 through 99 are reserved for the pre-defined codes below.
// Values outside that range are available for use via Register.
type Code int32

func (c Code) String() string {
	if s, ok := stdError[c]; ok {
		return s
	}
	return fmt.Sprintf("error code %d", c)
}

// A Coder is a value that can report an error code value.
type Coder interface {
	Code() Code
}

// Err converts c to an error value, which is nil for code.NoError and
// otherwise an error value whose text includes the code.
func (c Code) Err() error {
	if c == NoError {
		return nil
	} else if s, ok := stdError[c]; ok {
		return fmt.Errorf("[%d] %s", c, s)
	}
	return errors.New(c.String())
}

// Pre-defined error codes.
const (
	NoError         Code = 0 // Denotes a nil error (used by FromError)
	EndOfStream     Code = 1 // No further data are available (io.EOF)
	SystemError     Code = 2 // Failure of the underlying resource
	Closed          Code = 3 // Operation attempted on a closed channel
	InvalidHandle   Code = 4 // Missing or unusable resource handle
	InvalidArgument Code = 5 // Argument out of range
	Unsupported     Code = 6 // Operation not supported by the resource kind
)

var stdError = map[Code]string{
	NoError:         "no error (success)",
	EndOfStream:     "end of stream",
	SystemError:     "system error",
	Closed:          "channel closed",
	InvalidHandle:   "invalid handle",
	InvalidArgument: "invalid argument",
	Unsupported:     "operation not supported",
}

// Register adds a new Code value with the specified message string.  This
// function will panic if the proposed value is already registered, or falls
// in the reserved range.
func Register(value int32, message string) Code {
	code := Code(value)
	if s, ok := stdError[code]; ok {
		panic(fmt.Sprintf("code %d is already registered for %q", code, s))
	} else if value >= 0 && value < 100 {
		panic(fmt.Sprintf("code %d is in the reserved range", code))
	}
	stdError[code] = message
	return code
}

// FromError returns a Code to categorize the specified error.
// If err == nil, it returns code.NoError.
// If err is or wraps a Coder, it returns the reported code value.
// If err is or wraps io.EOF, it returns code.EndOfStream.
// Otherwise it returns code.SystemError.
func FromError(err error) Code {
	if err == nil {
		return NoError
	}
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	if errors.Is(err, io.EOF) {
		return EndOfStream
	}
	return SystemError
}
