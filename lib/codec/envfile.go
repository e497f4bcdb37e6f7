// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import "github.com/joho/godotenv"

// Envy decodes dotenv-style KEY=VALUE text into a flat map. There is
// no canonical serialization of arbitrary structured data to
// environment assignments, so the format is decode-only.
var envyCodec = &Codec{
	Name:   "Envy",
	Decode: decodeEnvFile,
}

func decodeEnvFile(data []byte) (Value, error) {
	pairs, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, err
	}
	result := make(map[string]any, len(pairs))
	for key, value := range pairs {
		result[key] = value
	}
	return result, nil
}
