// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

// Package pipeline couples a frame reader, a codec pair, and a frame
// writer into a streaming transcode run.
//
// The pipeline runs two goroutines. The producer splits the byte
// source into frames and hands each raw frame through a channel with
// capacity one; the consumer decodes the frame in the source format,
// encodes it in the target format, and writes it to the sink. The
// single-slot channel bounds buffering: the producer reads at most one
// frame ahead of the consumer, so a slow sink throttles the source
// instead of accumulating frames in memory. Frames leave the writer in
// source order.
package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/volks73/panser/lib/codec"
	"github.com/volks73/panser/lib/framing"
	"github.com/volks73/panser/lib/radix"
)

// Config describes a single transcode run.
type Config struct {
	// SourceFormat and TargetFormat name registered codecs. The source
	// codec must support decoding and the target codec encoding.
	SourceFormat string
	TargetFormat string

	// Source supplies input bytes and Sink receives output bytes. The
	// pipeline reads the source to EOF; it does not close either end.
	Source io.Reader
	Sink   io.Writer

	// InputFraming splits the source into frames and OutputFraming
	// envelopes each transcoded frame on the sink.
	InputFraming  framing.Mode
	OutputFraming framing.Mode

	// Radix renders output payloads as space-separated integer tokens
	// instead of raw bytes. radix.None writes raw bytes.
	Radix radix.Radix

	// TrailingNewline appends a final newline to the sink after the
	// last frame.
	TrailingNewline bool

	// Logger receives progress records at debug level. A nil Logger
	// discards them.
	Logger *slog.Logger
}

// Run transcodes cfg.Source to cfg.Sink. It returns nil after the
// source is exhausted and the sink flushed, or the first error from
// either side of the pipeline. Format and direction problems are
// reported before any input is read.
func Run(ctx context.Context, cfg Config) error {
	source, err := codec.Lookup(cfg.SourceFormat)
	if err != nil {
		return err
	}
	target, err := codec.Lookup(cfg.TargetFormat)
	if err != nil {
		return err
	}
	if !source.CanDecode() {
		return &codec.UnsupportedDirectionError{Format: source.Name, Direction: "decode"}
	}
	if !target.CanEncode() {
		return &codec.UnsupportedDirectionError{Format: target.Name, Direction: "encode"}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Debug("starting transcode",
		"from", source.Name,
		"to", target.Name,
		"input_framing", cfg.InputFraming.String(),
		"output_framing", cfg.OutputFraming.String())

	frames := make(chan []byte, 1)
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(frames)
		reader := framing.NewReader(cfg.Source, cfg.InputFraming)
		for {
			frame, err := reader.Next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				var trunc *framing.TruncationError
				if errors.As(err, &trunc) {
					return err
				}
				return &IOError{Op: "read input", Err: err}
			}
			select {
			case frames <- frame:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	group.Go(func() error {
		writer := framing.NewWriter(cfg.Sink, cfg.OutputFraming, cfg.Radix, cfg.TrailingNewline)
		index := 0
		for frame := range frames {
			value, err := source.Decode(frame)
			if err != nil {
				return &DecodeError{Format: source.Name, FrameIndex: index, Err: err}
			}
			payload, err := target.Encode(value)
			if err != nil {
				return &EncodeError{Format: target.Name, FrameIndex: index, Err: err}
			}
			if err := writer.WriteFrame(payload); err != nil {
				return &IOError{Op: "write output", Err: err}
			}
			index++
		}
		// The producer closes the channel both on EOF and on failure;
		// only a clean drain should flush the sink.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := writer.Close(); err != nil {
			return &IOError{Op: "flush output", Err: err}
		}
		logger.Debug("transcode complete", "frames", index)
		return nil
	})

	return group.Wait()
}
