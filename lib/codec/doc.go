// Copyright 2026 The Panser Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec maps serialization format names to decode and encode
// functions over a universal intermediate value.
//
// Every decoder produces, and every encoder consumes, a Value drawn
// from a closed set of shapes: nil, bool, int64, uint64, float64,
// string, []byte, []any, and map[string]any. The normalize step
// collapses whatever concrete types a format library emits into that
// set, so any source format can feed any target format. A value that
// both formats can represent round-trips losslessly; precision loss
// when crossing into a narrower format is an accepted property of that
// format, not a defect.
//
// Not every format supports both directions. Envy and Pickle are
// decode-only (no maintained Go library serializes either format for
// arbitrary values), and Bincode supports neither direction because
// the format is not self-describing. Direction support is expressed
// structurally: the Codec's function field is nil for an unsupported
// direction. Callers check direction support at configuration time,
// before any frame is processed.
package codec
