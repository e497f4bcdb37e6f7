// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"math/big"

	"github.com/nlpodyssey/gopickle/pickle"
	"github.com/nlpodyssey/gopickle/types"
)

// Pickle decodes Python pickle streams. The Go ecosystem has an
// unpickler but no serializer for arbitrary values, so the format is
// decode-only.
var pickleCodec = &Codec{
	Name:   "Pickle",
	Decode: decodePickle,
}

func decodePickle(data []byte) (Value, error) {
	value, err := pickle.Loads(string(data))
	if err != nil {
		return nil, err
	}
	return fromPickle(value)
}

// fromPickle converts gopickle's container types into the universal
// shape set. Only data shapes convert; pickled class instances and
// other Python-side objects are rejected rather than guessed at.
func fromPickle(v any) (Value, error) {
	switch value := v.(type) {
	case *types.Dict:
		result := make(map[string]any, value.Len())
		for _, entry := range *value {
			element, err := fromPickle(entry.Value)
			if err != nil {
				return nil, err
			}
			result[fmt.Sprint(entry.Key)] = element
		}
		return result, nil

	case *types.List:
		items := make([]any, 0, value.Len())
		for _, member := range *value {
			element, err := fromPickle(member)
			if err != nil {
				return nil, err
			}
			items = append(items, element)
		}
		return items, nil

	case *types.Tuple:
		items := make([]any, 0, value.Len())
		for _, member := range *value {
			element, err := fromPickle(member)
			if err != nil {
				return nil, err
			}
			items = append(items, element)
		}
		return items, nil

	case *big.Int:
		if value.IsInt64() {
			return value.Int64(), nil
		}
		if value.IsUint64() {
			return value.Uint64(), nil
		}
		return value.String(), nil

	case nil, bool, string, int, int64, float64, []byte:
		return normalize(value), nil
	}
	return nil, fmt.Errorf("unsupported pickle object of type %T", v)
}
