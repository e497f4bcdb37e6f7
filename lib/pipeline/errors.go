// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import "fmt"

// DecodeError reports a frame the source codec could not decode. The
// run aborts at the failing frame; a stream filter cannot resynchronize
// on a corrupt frame boundary.
type DecodeError struct {
	// Format is the source format name.
	Format string

	// FrameIndex is the zero-based index of the failing frame.
	FrameIndex int

	// Err is the codec's own error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode frame %d as %s: %v", e.FrameIndex, e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status for transcoding failures.
func (e *DecodeError) ExitCode() int { return 1 }

// EncodeError reports a value the target codec could not encode.
type EncodeError struct {
	Format     string
	FrameIndex int
	Err        error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode frame %d as %s: %v", e.FrameIndex, e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status for transcoding failures.
func (e *EncodeError) ExitCode() int { return 1 }

// IOError reports a failure reading the byte source or writing the
// byte sink.
type IOError struct {
	// Op describes the failing operation, e.g. "read input".
	Op string

	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status for I/O failures.
func (e *IOError) ExitCode() int { return 3 }
