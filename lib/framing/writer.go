// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package framing

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/volks73/panser/lib/radix"
)

// Writer wraps transcoded frames with a framing envelope and writes
// them to a byte sink. Each WriteFrame call is flushed as a unit, so
// an interactive downstream reader sees whole frames and external
// termination never leaves a partial envelope behind.
//
// When a rendering radix is set, the payload bytes (and the length
// prefix under sized framing) are written as space-separated numeric
// tokens instead of raw bytes. The delimiter byte is always written
// raw: a newline delimiter must actually end the line when the tool is
// used as an interactive console.
type Writer struct {
	sink            *bufio.Writer
	mode            Mode
	radix           radix.Radix
	trailingNewline bool
}

// NewWriter returns a Writer that frames payloads according to mode.
// With trailingNewline set, Close writes a single newline byte after
// the final frame of the run.
func NewWriter(sink io.Writer, mode Mode, r radix.Radix, trailingNewline bool) *Writer {
	return &Writer{
		sink:            bufio.NewWriter(sink),
		mode:            mode,
		radix:           r,
		trailingNewline: trailingNewline,
	}
}

// WriteFrame writes one frame with its envelope and flushes. Under
// sized framing the prefix carries the raw encoded payload length,
// computed before any radix rendering.
func (w *Writer) WriteFrame(payload []byte) error {
	if w.mode.Kind == KindSized {
		var prefix [4]byte
		binary.BigEndian.PutUint32(prefix[:], uint32(len(payload)))
		if _, err := w.sink.Write(w.radix.Render(prefix[:])); err != nil {
			return err
		}
	}
	if _, err := w.sink.Write(w.radix.Render(payload)); err != nil {
		return err
	}
	if w.mode.Kind == KindDelimited {
		if err := w.sink.WriteByte(w.mode.Delimiter); err != nil {
			return err
		}
	}
	return w.sink.Flush()
}

// Close finishes the run: it writes the trailing newline when
// configured and flushes any buffered output. It does not close the
// underlying sink.
func (w *Writer) Close() error {
	if w.trailingNewline {
		if err := w.sink.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.sink.Flush()
}
