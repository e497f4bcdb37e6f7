// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/volks73/panser/cmd/panser/cli"
	"github.com/volks73/panser/lib/bytespec"
	"github.com/volks73/panser/lib/codec"
	"github.com/volks73/panser/lib/framing"
	"github.com/volks73/panser/lib/pipeline"
	"github.com/volks73/panser/lib/radix"
)

const version = "0.6.0"

// options holds the parsed flag values for a single invocation. Empty
// strings and false bools mean the flag was not given.
type options struct {
	from   string
	to     string
	output string

	delimited       string
	delimitedInput  string
	delimitedOutput string
	sized           bool
	sizedInput      bool
	sizedOutput     bool

	radix   string
	newline bool
	verbose bool
	version bool
}

func root() *cli.Command {
	opts := &options{}

	return &cli.Command{
		Name:    "panser",
		Summary: "Transcode serialization formats between byte streams.",
		Description: `Transcode serialization formats between byte streams.

Reads one or more input files (or stdin), decodes each frame in the
source format, re-encodes it in the target format, and writes the
result to the output file (or stdout). Formats: ` + strings.Join(codec.Formats(), ", ") + `.

Delimiter bytes are written as an integer with an optional radix
suffix: 'b' binary, 'd' decimal, 'h' hexadecimal (the default), or
'o' octal. For example, 0Ah, 10d, 1010b, and 012o all name the
newline byte.`,
		Usage: "panser [flags] [file ...]",
		Examples: []cli.Example{
			{
				Description: "JSON from stdin to Msgpack on stdout",
				Command:     `echo '{"bool":true}' | panser`,
			},
			{
				Description: "CBOR file to YAML, inferring the source format from the extension",
				Command:     "panser -t yaml data.cbor",
			},
			{
				Description: "newline-delimited JSON records to length-prefixed Msgpack frames",
				Command:     "panser --delimited-input 0Ah --sized-output records.json -o records.mp",
			},
			{
				Description: "display the Msgpack encoding as hexadecimal tokens",
				Command:     `echo '{"bool":true}' | panser -r hex -n`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("panser", pflag.ContinueOnError)
			flags.StringVarP(&opts.from, "from", "f", "", "source format (default inferred from the first file extension, else JSON)")
			flags.StringVarP(&opts.to, "to", "t", "", "target format (default inferred from the output file extension, else Msgpack)")
			flags.StringVarP(&opts.output, "output", "o", "", "write output to `FILE` instead of stdout")
			flags.StringVarP(&opts.delimited, "delimited", "d", "", "split input and terminate output frames at `BYTE`")
			flags.StringVar(&opts.delimitedInput, "delimited-input", "", "split input frames at `BYTE`")
			flags.StringVar(&opts.delimitedOutput, "delimited-output", "", "terminate each output frame with `BYTE`")
			flags.BoolVarP(&opts.sized, "sized", "s", false, "length-prefix input and output frames")
			flags.BoolVar(&opts.sizedInput, "sized-input", false, "read length-prefixed input frames")
			flags.BoolVar(&opts.sizedOutput, "sized-output", false, "length-prefix each output frame")
			flags.StringVarP(&opts.radix, "radix", "r", "", "render output bytes as space-separated integers: bin, dec, hex, or oct")
			flags.BoolVarP(&opts.newline, "newline", "n", false, "append a final newline to the output")
			flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
			flags.BoolVar(&opts.version, "version", false, "print the version and exit")
			return flags
		},
		Run: func(args []string) error {
			return run(opts, args)
		},
	}
}

func run(opts *options, args []string) error {
	if opts.version {
		fmt.Println("panser " + version)
		return nil
	}

	inputMode, outputMode, err := framingModes(opts)
	if err != nil {
		return err
	}

	outputRadix := radix.None
	if opts.radix != "" {
		outputRadix, err = radix.Parse(opts.radix)
		if err != nil {
			return err
		}
	}

	from := opts.from
	if from == "" && len(args) > 0 {
		from = inferFormat(args[0])
	}
	if from == "" {
		from = "JSON"
	}
	to := opts.to
	if to == "" && opts.output != "" {
		to = inferFormat(opts.output)
	}
	if to == "" {
		to = "Msgpack"
	}

	source, closeInputs, err := openInputs(args)
	if err != nil {
		return err
	}
	defer closeInputs()

	sink := io.Writer(os.Stdout)
	var outputFile *os.File
	if opts.output != "" {
		outputFile, err = os.Create(opts.output)
		if err != nil {
			return &pipeline.IOError{Op: "create output", Err: err}
		}
		sink = outputFile
	}

	runErr := pipeline.Run(context.Background(), pipeline.Config{
		SourceFormat:    from,
		TargetFormat:    to,
		Source:          source,
		Sink:            sink,
		InputFraming:    inputMode,
		OutputFraming:   outputMode,
		Radix:           outputRadix,
		TrailingNewline: opts.newline,
		Logger:          cli.NewLogger(opts.verbose),
	})
	if outputFile != nil {
		if closeErr := outputFile.Close(); closeErr != nil && runErr == nil {
			runErr = &pipeline.IOError{Op: "close output", Err: closeErr}
		}
	}
	return runErr
}

// framingModes resolves the framing flags into an input and an output
// mode. The two-sided flags (-d, -s) cannot be combined with each
// other or with any one-sided framing flag.
func framingModes(opts *options) (input, output framing.Mode, err error) {
	sided := opts.delimitedInput != "" || opts.delimitedOutput != "" ||
		opts.sizedInput || opts.sizedOutput
	switch {
	case opts.delimited != "" && opts.sized:
		return input, output, fmt.Errorf("--delimited cannot be combined with --sized")
	case opts.delimited != "" && sided:
		return input, output, fmt.Errorf("--delimited cannot be combined with one-sided framing flags")
	case opts.sized && sided:
		return input, output, fmt.Errorf("--sized cannot be combined with one-sided framing flags")
	case opts.delimitedInput != "" && opts.sizedInput:
		return input, output, fmt.Errorf("--delimited-input cannot be combined with --sized-input")
	case opts.delimitedOutput != "" && opts.sizedOutput:
		return input, output, fmt.Errorf("--delimited-output cannot be combined with --sized-output")
	}

	if opts.delimited != "" {
		delimiter, err := bytespec.ParseByte(opts.delimited)
		if err != nil {
			return input, output, err
		}
		return framing.Delimited(delimiter), framing.Delimited(delimiter), nil
	}
	if opts.sized {
		return framing.Sized(), framing.Sized(), nil
	}

	input = framing.None()
	if opts.delimitedInput != "" {
		delimiter, err := bytespec.ParseByte(opts.delimitedInput)
		if err != nil {
			return input, output, err
		}
		input = framing.Delimited(delimiter)
	} else if opts.sizedInput {
		input = framing.Sized()
	}

	output = framing.None()
	if opts.delimitedOutput != "" {
		delimiter, err := bytespec.ParseByte(opts.delimitedOutput)
		if err != nil {
			return input, output, err
		}
		output = framing.Delimited(delimiter)
	} else if opts.sizedOutput {
		output = framing.Sized()
	}
	return input, output, nil
}

// inferFormat maps a file extension to a format name, or "" when the
// extension names no known format.
func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".b":
		return "Bincode"
	case ".cbor":
		return "CBOR"
	case ".env":
		return "Envy"
	case ".hjson":
		return "Hjson"
	case ".json":
		return "JSON"
	case ".mp", ".msgpack":
		return "Msgpack"
	case ".pkl", ".pickle":
		return "Pickle"
	case ".toml":
		return "TOML"
	case ".url":
		return "URL"
	case ".yaml", ".yml":
		return "YAML"
	}
	return ""
}

// openInputs opens the named files and concatenates them into a single
// reader. With no files it returns stdin. The returned function closes
// every opened file.
func openInputs(paths []string) (io.Reader, func(), error) {
	if len(paths) == 0 {
		return os.Stdin, func() {}, nil
	}

	files := make([]*os.File, 0, len(paths))
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	readers := make([]io.Reader, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, &pipeline.IOError{Op: "open input", Err: err}
		}
		files = append(files, f)
		readers = append(readers, f)
	}
	return io.MultiReader(readers...), closeAll, nil
}
