// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

// Package radix renders raw bytes as space-separated numeric tokens for
// human-readable inspection of binary output.
package radix

import (
	"fmt"
	"strconv"
	"strings"
)

// Radix selects the numeral base used to render each output byte. The
// zero value None means raw binary output with no rendering.
type Radix int

const (
	None Radix = iota
	Binary
	Decimal
	Hexadecimal
	Octal
)

const upperHexDigits = "0123456789ABCDEF"

// ParseError reports a radix name that is not recognized.
type ParseError struct {
	Name string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown radix %q (supported: binary|bin|b, decimal|dec|d, hexadecimal|hex|h, octal|oct|o)", e.Name)
}

// ExitCode returns the process exit status for radix option parse
// failures.
func (e *ParseError) ExitCode() int { return 4 }

// Parse resolves a case-insensitive radix name. Full names, the
// three-letter abbreviations, and the single-letter forms are all
// accepted.
func Parse(name string) (Radix, error) {
	switch strings.ToLower(name) {
	case "b", "bin", "binary":
		return Binary, nil
	case "d", "dec", "decimal":
		return Decimal, nil
	case "h", "hex", "hexadecimal":
		return Hexadecimal, nil
	case "o", "oct", "octal":
		return Octal, nil
	}
	return None, &ParseError{Name: name}
}

func (r Radix) String() string {
	switch r {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	case Octal:
		return "octal"
	}
	return "none"
}

// Append renders one byte as a numeric token followed by a single
// space and appends it to dst. Hexadecimal tokens are uppercase and
// zero-padded to two digits; the other bases render without padding.
func (r Radix) Append(dst []byte, b byte) []byte {
	switch r {
	case Binary:
		dst = strconv.AppendUint(dst, uint64(b), 2)
	case Decimal:
		dst = strconv.AppendUint(dst, uint64(b), 10)
	case Hexadecimal:
		dst = append(dst, upperHexDigits[b>>4], upperHexDigits[b&0x0F])
	case Octal:
		dst = strconv.AppendUint(dst, uint64(b), 8)
	default:
		return append(dst, b)
	}
	return append(dst, ' ')
}

// Render returns the token rendering of data. With radix None the
// input is returned unchanged.
func (r Radix) Render(data []byte) []byte {
	if r == None {
		return data
	}
	// Hex tokens are the widest fixed case; binary tokens can reach
	// nine bytes each, so let append grow past the estimate.
	rendered := make([]byte, 0, len(data)*3)
	for _, b := range data {
		rendered = r.Append(rendered, b)
	}
	return rendered
}
