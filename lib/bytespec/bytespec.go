// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytespec parses human-written byte specifications into byte
// values. A specification is a run of digits with an optional trailing
// radix suffix: 'b' for binary, 'd' for decimal, 'h' for hexadecimal,
// 'o' for octal. Without a suffix the digits are read as hexadecimal.
// "1010b", "10d", "0Ah", "012o", and "0A" all name the ASCII newline
// character.
package bytespec

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseError reports a byte specification that could not be converted
// to a byte value.
type ParseError struct {
	// Spec is the specification as written by the user.
	Spec string

	// Err is the underlying parse failure.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse byte specification %q: %v", e.Spec, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status for byte specification
// parse failures.
func (e *ParseError) ExitCode() int { return 4 }

// ParseByte converts a byte specification into the byte it names.
// Values outside 0..255 and malformed digit runs are rejected. The
// radix suffix is case-insensitive and is always consumed when
// present, so "0d" is decimal zero, not hexadecimal 0x0D.
func ParseByte(spec string) (byte, error) {
	if spec == "" {
		return 0, &ParseError{Spec: spec, Err: errors.New("empty specification")}
	}

	digits := spec
	base := 16
	switch spec[len(spec)-1] {
	case 'b', 'B':
		base, digits = 2, spec[:len(spec)-1]
	case 'd', 'D':
		base, digits = 10, spec[:len(spec)-1]
	case 'h', 'H':
		base, digits = 16, spec[:len(spec)-1]
	case 'o', 'O':
		base, digits = 8, spec[:len(spec)-1]
	}
	if digits == "" {
		return 0, &ParseError{Spec: spec, Err: errors.New("missing digits before radix suffix")}
	}

	value, err := strconv.ParseUint(digits, base, 8)
	if err != nil {
		return 0, &ParseError{Spec: spec, Err: err}
	}
	return byte(value), nil
}
