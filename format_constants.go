// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

// Wire-format constants: token tags, header flags, and chunking parameters.

// WordSize is the fixed width of an ABI word in bytes.
const WordSize = 32

// SelectorSize is the width of an ABI function selector in bytes.
const SelectorSize = 4

// Token tag bytes. Every token starts with exactly one tag byte and decodes
// to exactly one 32-byte word.
const (
	tagRaw         = 0x00 // 32 raw bytes follow
	tagZeroTrimmed = 0x01 // length byte (0..31) + significant bytes
	tagDictDefine  = 0x02 // 32 raw bytes follow; assigns the next dictionary code
	tagDictRef     = 0x03 // uvarint dictionary code
	tagDelta       = 0x04 // sign/length byte + magnitude bytes, big-endian
)

// Header flag bits. Reserved bits must be zero.
const (
	flagHasSelector = 0x01
	flagReserved    = ^byte(flagHasSelector)
)

// Delta sign/length byte layout: bit 7 is the sign (set = negative), the
// low bits hold the magnitude byte count.
const (
	deltaSignBit = 0x80
	deltaLenMask = 0x7f
	maxDeltaLen  = WordSize
)

// maxZeroTrimLen bounds the significant-byte count of a zero-trimmed token;
// a word with no leading zero byte must be encoded another way.
const maxZeroTrimLen = WordSize - 1

// Per-token wire costs that do not depend on payload length.
const (
	costRaw        = 1 + WordSize // tag + full word
	costDictDefine = 1 + WordSize // tag + full word
)

// Chunking parameters for parallel compression.
const (
	// defaultChunkWords is the chunk size used once chunking activates.
	defaultChunkWords = 1024
	// parallelMinWords is the payload size (in words) below which a single
	// chunk is used: dictionary sharing beats parallelism for small inputs.
	parallelMinWords = 2048
)
