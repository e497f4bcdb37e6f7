// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package framing

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Reader extracts successive frames from a byte source under a framing
// mode. A Reader consumes its source exactly once; to re-read, create
// a new Reader on a fresh source.
type Reader struct {
	source *bufio.Reader
	mode   Mode
	done   bool
}

// NewReader returns a Reader that frames source according to mode.
func NewReader(source io.Reader, mode Mode) *Reader {
	return &Reader{source: bufio.NewReader(source), mode: mode}
}

// Next returns the next frame, exclusive of its framing envelope. At
// the end of the stream it returns io.EOF. Under none framing the
// whole remaining source is one frame, emitted even when empty, so a
// downstream codec sees the empty payload rather than silence.
func (r *Reader) Next() ([]byte, error) {
	if r.done {
		return nil, io.EOF
	}
	switch r.mode.Kind {
	case KindSized:
		return r.nextSized()
	case KindDelimited:
		return r.nextDelimited()
	}
	r.done = true
	frame, err := io.ReadAll(r.source)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return frame, nil
}

// nextSized reads one length-prefixed frame. End of stream before the
// first prefix byte is a clean end; end of stream after a partial
// prefix or inside the body is a truncation.
func (r *Reader) nextSized() ([]byte, error) {
	var prefix [4]byte
	read, err := io.ReadFull(r.source, prefix[:])
	if errors.Is(err, io.EOF) {
		r.done = true
		return nil, io.EOF
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &TruncationError{Section: "length prefix", Want: len(prefix), Got: read}
	}
	if err != nil {
		return nil, fmt.Errorf("read length prefix: %w", err)
	}

	length := binary.BigEndian.Uint32(prefix[:])
	body := make([]byte, length)
	read, err = io.ReadFull(r.source, body)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &TruncationError{Section: "frame body", Want: int(length), Got: read}
	}
	if err != nil {
		return nil, fmt.Errorf("read frame body: %w", err)
	}
	return body, nil
}

// nextDelimited reads bytes up to the sentinel. The sentinel is not
// part of the frame. A final message without a trailing sentinel is
// still emitted as a complete frame; two consecutive sentinels yield
// an empty frame, which is passed through like any other.
func (r *Reader) nextDelimited() ([]byte, error) {
	frame, err := r.source.ReadBytes(r.mode.Delimiter)
	if errors.Is(err, io.EOF) {
		r.done = true
		if len(frame) > 0 {
			return frame, nil
		}
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("read delimited frame: %w", err)
	}
	return frame[:len(frame)-1], nil
}
