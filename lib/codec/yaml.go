// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import "gopkg.in/yaml.v3"

var yamlCodec = &Codec{
	Name:   "YAML",
	Decode: decodeYAML,
	Encode: encodeYAML,
}

func decodeYAML(data []byte) (Value, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return normalize(value), nil
}

func encodeYAML(value Value) ([]byte, error) {
	return yaml.Marshal(value)
}
