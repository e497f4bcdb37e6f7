// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/json"
	"fmt"
	"time"
)

// normalize recursively converts a freshly decoded value into the
// universal shape set. Format libraries disagree on the concrete types
// they emit (maps keyed by any, typed slices of tables, json.Number,
// time.Time) and every encoder downstream expects the closed set
// documented on Value.
func normalize(v any) any {
	switch value := v.(type) {
	case map[any]any:
		// Maps with non-string keys (CBOR and YAML allow them) become
		// string-keyed so every target format can represent them.
		result := make(map[string]any, len(value))
		for key, element := range value {
			result[fmt.Sprint(key)] = normalize(element)
		}
		return result

	case map[string]any:
		for key, element := range value {
			value[key] = normalize(element)
		}
		return value

	case []any:
		for index, element := range value {
			value[index] = normalize(element)
		}
		return value

	case []map[string]any:
		// BurntSushi/toml emits array-of-tables as a typed slice.
		items := make([]any, len(value))
		for index, element := range value {
			items[index] = normalize(element)
		}
		return items

	case json.Number:
		if integer, err := value.Int64(); err == nil {
			return integer
		}
		if floating, err := value.Float64(); err == nil {
			return floating
		}
		return value.String()

	case time.Time:
		// TOML and YAML decode timestamps to time.Time; render them as
		// RFC 3339 text so formats without a native time type keep the
		// information.
		return value.Format(time.RFC3339Nano)

	case int:
		return int64(value)
	case int8:
		return int64(value)
	case int16:
		return int64(value)
	case int32:
		return int64(value)
	case uint:
		return uint64(value)
	case uint8:
		return uint64(value)
	case uint16:
		return uint64(value)
	case uint32:
		return uint64(value)
	case float32:
		return float64(value)

	default:
		return v
	}
}
