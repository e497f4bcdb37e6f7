// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode encodes with Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. The same logical value always produces
// identical bytes, which keeps transcoded output stable across runs.
var cborEncMode cbor.EncMode

// cborDecMode decodes standard CBOR. Any-typed targets get
// map[string]any rather than the default map[any]any, and integers
// that fit decode as int64 so CBOR input lands on the same universal
// shapes as every other format.
var cborDecMode cbor.DecMode

func init() {
	var err error

	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IntDec:         cbor.IntDecConvertSigned,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

var cborCodec = &Codec{
	Name:   "CBOR",
	Decode: decodeCBOR,
	Encode: encodeCBOR,
}

func decodeCBOR(data []byte) (Value, error) {
	var value any
	if err := cborDecMode.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return normalize(value), nil
}

func encodeCBOR(value Value) ([]byte, error) {
	return cborEncMode.Marshal(value)
}
