// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"strings"
)

// Value is the format-agnostic intermediate representation shared by
// all codecs. It is always one of: nil, bool, int64, uint64, float64,
// string, []byte, []any, or map[string]any (recursively).
type Value = any

// DecodeFunc converts one frame's bytes into a Value.
type DecodeFunc func(data []byte) (Value, error)

// EncodeFunc converts a Value into one frame's bytes.
type EncodeFunc func(value Value) ([]byte, error)

// Codec is one serialization format's capability pair. A nil Decode or
// Encode means the format does not support that direction.
type Codec struct {
	Name   string
	Decode DecodeFunc
	Encode EncodeFunc
}

// CanDecode reports whether the format supports the decode direction.
func (c *Codec) CanDecode() bool { return c.Decode != nil }

// CanEncode reports whether the format supports the encode direction.
func (c *Codec) CanEncode() bool { return c.Encode != nil }

// registry is the closed set of supported formats, ordered by name for
// help and error output.
var registry = []*Codec{
	bincodeCodec,
	cborCodec,
	envyCodec,
	hjsonCodec,
	jsonCodec,
	msgpackCodec,
	pickleCodec,
	tomlCodec,
	urlCodec,
	yamlCodec,
}

// Lookup resolves a case-insensitive format name.
func Lookup(name string) (*Codec, error) {
	for _, c := range registry {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, &UnknownFormatError{Name: name}
}

// Formats returns the names of all registered formats.
func Formats() []string {
	names := make([]string, len(registry))
	for i, c := range registry {
		names[i] = c.Name
	}
	return names
}

// UnknownFormatError reports a format name that is not in the
// registry.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (supported: %s)", e.Name, strings.Join(Formats(), ", "))
}

// ExitCode returns the process exit status for unknown format names.
func (e *UnknownFormatError) ExitCode() int { return 2 }

// UnsupportedDirectionError reports a format asked to perform a
// direction it does not implement.
type UnsupportedDirectionError struct {
	Format    string
	Direction string // "decode" or "encode"
}

func (e *UnsupportedDirectionError) Error() string {
	return fmt.Sprintf("format %s does not support %s", e.Format, e.Direction)
}

// ExitCode returns the process exit status for unsupported format
// directions.
func (e *UnsupportedDirectionError) ExitCode() int { return 2 }
