// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

// Package framing splits a byte stream into discrete message frames
// and wraps outgoing frames with a framing envelope. Three disciplines
// are supported:
//
//   - none: the entire stream is one frame
//   - sized: each frame is preceded by its length as a 4-byte
//     big-endian unsigned integer
//   - delimited: each frame is terminated by a single sentinel byte
//
// Input and output framing are independent; a stream can be read
// delimited and written sized. A frame is always the message payload
// exclusive of its envelope.
package framing

import "fmt"

// Kind identifies a framing discipline.
type Kind int

const (
	KindNone Kind = iota
	KindSized
	KindDelimited
)

// Mode is a framing discipline plus its parameters. Construct with
// None, Sized, or Delimited.
type Mode struct {
	Kind      Kind
	Delimiter byte // meaningful only for KindDelimited
}

// None frames the entire stream as a single message.
func None() Mode { return Mode{Kind: KindNone} }

// Sized frames each message with a 4-byte big-endian length prefix.
func Sized() Mode { return Mode{Kind: KindSized} }

// Delimited frames each message with a trailing sentinel byte.
func Delimited(delimiter byte) Mode {
	return Mode{Kind: KindDelimited, Delimiter: delimiter}
}

func (m Mode) String() string {
	switch m.Kind {
	case KindSized:
		return "sized"
	case KindDelimited:
		return fmt.Sprintf("delimited(0x%02X)", m.Delimiter)
	}
	return "none"
}

// TruncationError reports a stream that ended in the middle of a sized
// frame: after a partial length prefix, or inside the frame body.
// End-of-stream at a frame boundary is a clean end, not a truncation.
type TruncationError struct {
	// Section is the part of the frame that was cut short, either
	// "length prefix" or "frame body".
	Section string

	// Want and Got are the expected and observed byte counts for the
	// truncated section.
	Want int
	Got  int
}

func (e *TruncationError) Error() string {
	return fmt.Sprintf("truncated %s: want %d bytes, got %d before end of stream", e.Section, e.Want, e.Got)
}

// ExitCode returns the process exit status for frame truncation.
func (e *TruncationError) ExitCode() int { return 5 }
