// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/json"

	"github.com/tidwall/jsonc"
)

// Hjson reuses the JSON value path: decoding first strips the
// human-friendly syntax (comments, trailing commas) down to strict
// JSON, and encoding emits indented JSON, which is valid Hjson and
// readable on an interactive console.
var hjsonCodec = &Codec{
	Name:   "Hjson",
	Decode: decodeHjson,
	Encode: encodeHjson,
}

func decodeHjson(data []byte) (Value, error) {
	return decodeJSONValue(jsonc.ToJSON(data))
}

func encodeHjson(value Value) ([]byte, error) {
	return json.MarshalIndent(value, "", "  ")
}
