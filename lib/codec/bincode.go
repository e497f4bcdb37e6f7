// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

package codec

// Bincode is not self-describing: interpreting a bincode stream
// requires the producing program's schema, so neither direction can be
// implemented over the universal value. The name stays registered so
// asking for it reports "direction unsupported" instead of the
// misleading "unknown format".
var bincodeCodec = &Codec{
	Name: "Bincode",
}
