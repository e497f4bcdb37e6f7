// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

var tomlCodec = &Codec{
	Name:   "TOML",
	Decode: decodeTOML,
	Encode: encodeTOML,
}

func decodeTOML(data []byte) (Value, error) {
	var value map[string]any
	if err := toml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return normalize(value), nil
}

func encodeTOML(value Value) ([]byte, error) {
	// TOML documents are tables. Rejecting other top-level shapes here
	// gives a clearer message than the library's reflection error.
	if _, ok := value.(map[string]any); !ok {
		return nil, fmt.Errorf("TOML requires a top-level table, got %T", value)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
