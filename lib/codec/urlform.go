// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// URL is the application/x-www-form-urlencoded format: a flat map of
// string keys to scalar values. Repeated keys decode to an array;
// values are always strings on the wire, so decoded values are
// strings. Encoding accepts the universal scalars and flattens arrays
// back to repeated keys; nested maps and arrays of arrays cannot be
// represented.
var urlCodec = &Codec{
	Name:   "URL",
	Decode: decodeURLForm,
	Encode: encodeURLForm,
}

func decodeURLForm(data []byte) (Value, error) {
	values, err := url.ParseQuery(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, err
	}
	result := make(map[string]any, len(values))
	for key, list := range values {
		if len(list) == 1 {
			result[key] = list[0]
			continue
		}
		items := make([]any, len(list))
		for i, item := range list {
			items[i] = item
		}
		result[key] = items
	}
	return result, nil
}

func encodeURLForm(value Value) ([]byte, error) {
	object, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("URL encoding requires a top-level map, got %T", value)
	}
	form := url.Values{}
	for key, element := range object {
		switch item := element.(type) {
		case []any:
			for _, member := range item {
				text, err := formScalar(member)
				if err != nil {
					return nil, fmt.Errorf("key %q: %w", key, err)
				}
				form.Add(key, text)
			}
		default:
			text, err := formScalar(element)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			form.Set(key, text)
		}
	}
	return []byte(form.Encode()), nil
}

func formScalar(v any) (string, error) {
	switch value := v.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case uint64:
		return strconv.FormatUint(value, 10), nil
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("cannot URL-encode nested value of type %T", v)
}
