// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

var jsonCodec = &Codec{
	Name:   "JSON",
	Decode: decodeJSON,
	Encode: encodeJSON,
}

func decodeJSON(data []byte) (Value, error) {
	return decodeJSONValue(data)
}

// decodeJSONValue is shared by the JSON and Hjson codecs. Numbers are
// decoded through json.Number so 64-bit integers survive a round trip
// instead of collapsing to float64.
func decodeJSONValue(data []byte) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	// One frame is one value; anything after it is a framing mistake
	// upstream, not whitespace.
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return normalize(value), nil
}

func encodeJSON(value Value) ([]byte, error) {
	return json.Marshal(value)
}
