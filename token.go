// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

import "github.com/holiman/uint256"

// tokenKind enumerates the closed set of per-word encodings. Consumers
// switch exhaustively over these; adding a kind is a compile-visible change
// in every switch.
type tokenKind uint8

const (
	kindRaw tokenKind = iota
	kindZeroTrimmed
	kindDictDefine
	kindDictRef
	kindDelta
)

// token is one word's chosen representation. Exactly one token exists per
// word, in word order; which fields are meaningful depends on kind:
//
//   - kindRaw, kindDictDefine: word holds the full value
//   - kindZeroTrimmed: word holds the full value, length its significant
//     byte count (the wire carries only the last length bytes)
//   - kindDictRef: code
//   - kindDelta: neg and mag, relative to the preceding word
type token struct {
	word   Word
	mag    uint256.Int
	code   uint64
	length int
	kind   tokenKind
	neg    bool
}

// wireCost returns the serialized size of the token in bytes.
func (t *token) wireCost() int {
	switch t.kind {
	case kindRaw:
		return costRaw
	case kindZeroTrimmed:
		return 2 + t.length
	case kindDictDefine:
		return costDictDefine
	case kindDictRef:
		return 1 + uvarintLen(t.code)
	case kindDelta:
		return 2 + magnitudeLen(&t.mag)
	}
	panic("abizip: invalid token kind")
}

// magnitudeLen returns the minimal byte count holding m (0 for zero).
func magnitudeLen(m *uint256.Int) int {
	return (m.BitLen() + 7) / 8
}
