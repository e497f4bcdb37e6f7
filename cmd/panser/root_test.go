// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/volks73/panser/lib/bytespec"
	"github.com/volks73/panser/lib/codec"
	"github.com/volks73/panser/lib/framing"
	"github.com/volks73/panser/lib/pipeline"
)

func TestFramingModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    options
		input   framing.Mode
		output  framing.Mode
		wantErr bool
	}{
		{
			name:   "default raw",
			opts:   options{},
			input:  framing.None(),
			output: framing.None(),
		},
		{
			name:   "delimited both sides",
			opts:   options{delimited: "0Ah"},
			input:  framing.Delimited('\n'),
			output: framing.Delimited('\n'),
		},
		{
			name:   "sized both sides",
			opts:   options{sized: true},
			input:  framing.Sized(),
			output: framing.Sized(),
		},
		{
			name:   "delimited input only",
			opts:   options{delimitedInput: "10d"},
			input:  framing.Delimited('\n'),
			output: framing.None(),
		},
		{
			name:   "mixed sides",
			opts:   options{delimitedInput: "0Ah", sizedOutput: true},
			input:  framing.Delimited('\n'),
			output: framing.Sized(),
		},
		{
			name:    "delimited conflicts with sized",
			opts:    options{delimited: "0Ah", sized: true},
			wantErr: true,
		},
		{
			name:    "delimited conflicts with sized-input",
			opts:    options{delimited: "0Ah", sizedInput: true},
			wantErr: true,
		},
		{
			name:    "sized conflicts with delimited-output",
			opts:    options{sized: true, delimitedOutput: "0Ah"},
			wantErr: true,
		},
		{
			name:    "two input framings",
			opts:    options{delimitedInput: "0Ah", sizedInput: true},
			wantErr: true,
		},
		{
			name:    "two output framings",
			opts:    options{delimitedOutput: "0Ah", sizedOutput: true},
			wantErr: true,
		},
		{
			name:    "bad delimiter spec",
			opts:    options{delimited: "zz"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			input, output, err := framingModes(&tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("framingModes succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("framingModes: %v", err)
			}
			if input != tt.input {
				t.Errorf("input = %v, want %v", input, tt.input)
			}
			if output != tt.output {
				t.Errorf("output = %v, want %v", output, tt.output)
			}
		})
	}
}

func TestInferFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"data.json", "JSON"},
		{"data.JSON", "JSON"},
		{"data.cbor", "CBOR"},
		{"data.mp", "Msgpack"},
		{"data.msgpack", "Msgpack"},
		{"data.yml", "YAML"},
		{"data.yaml", "YAML"},
		{"data.toml", "TOML"},
		{"data.hjson", "Hjson"},
		{"data.pkl", "Pickle"},
		{"settings.env", "Envy"},
		{"query.url", "URL"},
		{"data.b", "Bincode"},
		{"/tmp/nested/dir/data.json", "JSON"},
		{"data.txt", ""},
		{"data", ""},
	}
	for _, tt := range tests {
		if got := inferFormat(tt.path); got != tt.want {
			t.Errorf("inferFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	if err := os.WriteFile(first, []byte(`{"a":1}`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte(`{"b":2}`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	source, closeInputs, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs: %v", err)
	}
	defer closeInputs()

	var all strings.Builder
	buf := make([]byte, 64)
	for {
		n, err := source.Read(buf)
		all.Write(buf[:n])
		if err != nil {
			break
		}
	}
	if got, want := all.String(), "{\"a\":1}\n{\"b\":2}\n"; got != want {
		t.Fatalf("concatenated input = %q, want %q", got, want)
	}
}

func TestOpenInputsMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := openInputs([]string{filepath.Join(t.TempDir(), "absent.json")})
	if err == nil {
		t.Fatal("openInputs succeeded for a missing file")
	}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 3 {
		t.Fatalf("err = %v, want I/O error with exit code 3", err)
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{&pipeline.DecodeError{Format: "JSON", Err: errors.New("x")}, "Decode"},
		{&pipeline.EncodeError{Format: "TOML", Err: errors.New("x")}, "Encode"},
		{&pipeline.IOError{Op: "read input", Err: errors.New("x")}, "Io"},
		{&framing.TruncationError{Section: "frame body", Want: 4, Got: 1}, "Truncation"},
		{&bytespec.ParseError{Spec: "zz", Err: errors.New("x")}, "Delimiter"},
		{&codec.UnknownFormatError{Name: "avro"}, "Format"},
		{&codec.UnsupportedDirectionError{Format: "Pickle", Direction: "encode"}, "Format"},
		{fmt.Errorf("wrapped: %w", &pipeline.IOError{Op: "open input", Err: errors.New("x")}), "Io"},
		{errors.New("flag conflict"), "Generic"},
	}
	for _, tt := range tests {
		if got := errorKind(tt.err); got != tt.want {
			t.Errorf("errorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.json")
	output := filepath.Join(dir, "output.mp")
	if err := os.WriteFile(input, []byte(`{"bool":true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &options{output: output}
	if err := run(opts, []string{input}); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x81, 0xA4, 'b', 'o', 'o', 'l', 0xC3}
	if string(got) != string(want) {
		t.Fatalf("output = % X, want % X", got, want)
	}
}

func TestRunInfersTargetFromOutputExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.json")
	output := filepath.Join(dir, "output.yaml")
	if err := os.WriteFile(input, []byte(`{"count":42}`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &options{output: output}
	if err := run(opts, []string{input}); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if want := "count: 42\n"; string(got) != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
