// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/volks73/panser/lib/bytespec"
	"github.com/volks73/panser/lib/codec"
	"github.com/volks73/panser/lib/framing"
	"github.com/volks73/panser/lib/pipeline"
	"github.com/volks73/panser/lib/radix"
)

func main() {
	err := root().Execute(os.Args[1:])
	if err == nil {
		return
	}

	code := 2
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		code = coder.ExitCode()
	}

	tag := fmt.Sprintf("error[%d] (%s):", code, errorKind(err))
	if term.IsTerminal(int(os.Stderr.Fd())) {
		tag = "\x1b[91m" + tag + "\x1b[0m"
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", tag, err)
	os.Exit(code)
}

// errorKind names the error category shown in the stderr tag.
func errorKind(err error) string {
	var (
		decodeErr    *pipeline.DecodeError
		encodeErr    *pipeline.EncodeError
		ioErr        *pipeline.IOError
		truncErr     *framing.TruncationError
		bytespecErr  *bytespec.ParseError
		radixErr     *radix.ParseError
		formatErr    *codec.UnknownFormatError
		directionErr *codec.UnsupportedDirectionError
	)
	switch {
	case errors.As(err, &decodeErr):
		return "Decode"
	case errors.As(err, &encodeErr):
		return "Encode"
	case errors.As(err, &ioErr):
		return "Io"
	case errors.As(err, &truncErr):
		return "Truncation"
	case errors.As(err, &bytespecErr):
		return "Delimiter"
	case errors.As(err, &radixErr):
		return "Radix"
	case errors.As(err, &formatErr), errors.As(err, &directionErr):
		return "Format"
	}
	return "Generic"
}
