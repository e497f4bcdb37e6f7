// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

var msgpackCodec = &Codec{
	Name:   "Msgpack",
	Decode: decodeMsgpack,
	Encode: encodeMsgpack,
}

func decodeMsgpack(data []byte) (Value, error) {
	decoder := msgpack.NewDecoder(bytes.NewReader(data))
	value, err := decoder.DecodeInterface()
	if err != nil {
		return nil, err
	}
	return normalize(value), nil
}

func encodeMsgpack(value Value) ([]byte, error) {
	var buf bytes.Buffer
	encoder := msgpack.NewEncoder(&buf)
	// Sorted keys keep the encoding deterministic, matching the CBOR
	// codec's Core Deterministic Encoding.
	encoder.SetSortMapKeys(true)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
