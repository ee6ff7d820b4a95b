// Copyright (C) 2022 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines internal support code for writing tests.
package testutil

import (
	"io"
	"testing"
)

// Handle wraps an io.ReadWriteCloser, counting calls to Close and optionally
// injecting errors. Handle exposes only Read, Write and Close, hiding any
// other capabilities of the wrapped value.
type Handle struct {
	RW io.ReadWriteCloser

	ReadErr  error // if set, Read reports this error without reading
	WriteErr error // if set, Write reports this error without writing
	CloseErr error // if set, Close reports this error after closing RW

	Closes int // the number of calls to Close
}

// NewHandle returns a *Handle wrapping rw with no injected errors.
func NewHandle(rw io.ReadWriteCloser) *Handle { return &Handle{RW: rw} }

func (h *Handle) Read(buf []byte) (int, error) {
	if h.ReadErr != nil {
		return 0, h.ReadErr
	}
	return h.RW.Read(buf)
}

func (h *Handle) Write(buf []byte) (int, error) {
	if h.WriteErr != nil {
		return 0, h.WriteErr
	}
	return h.RW.Write(buf)
}

func (h *Handle) Close() error {
	h.Closes++
	err := h.RW.Close()
	if h.CloseErr != nil {
		return h.CloseErr
	}
	return err
}

// SeekHandle is a Handle that also exposes the Seek method of the wrapped
// value, which must implement io.Seeker.
type SeekHandle struct {
	*Handle
}

// Seek implements io.Seeker.
func (s SeekHandle) Seek(offset int64, whence int) (int64, error) {
	return s.RW.(io.Seeker).Seek(offset, whence)
}

// MustClose calls c.Close and fails t if it reports an error.
func MustClose(t *testing.T, c io.Closer) {
	t.Helper()
	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}
