// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

// CompressOptions configures compression. The zero value treats the input
// as raw ABI data without a selector and picks chunking automatically.
type CompressOptions struct {
	// HasSelector marks the input as a full contract call: the first 4
	// bytes are treated as the function selector (only when the input is
	// at least 4 bytes long).
	HasSelector bool
	// RequireAligned makes Compress fail with ErrMalformedInput when the
	// input (after the selector) is not a multiple of 32 bytes. When
	// unset, the unaligned tail is carried verbatim.
	RequireAligned bool
	// ChunkWords is the number of words per independently compressed
	// chunk. 0 selects the default policy: one chunk for small payloads,
	// fixed-size chunks once the payload is large enough to parallelize.
	ChunkWords int
	// Parallel is the number of worker goroutines for chunk compression.
	// 0 = GOMAXPROCS, 1 = sequential.
	Parallel int
	// Dictionary holds pre-shared static entries referencable without
	// being transmitted. The decompressor must supply the same entries in
	// the same order.
	Dictionary []Word
}

// DefaultCompressOptions returns options for raw (selector-less) data with
// automatic chunking.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures decompression. The stream itself is
// self-describing; options carry only the static dictionary and tuning.
type DecompressOptions struct {
	// Dictionary must hold the same pre-shared entries, in the same
	// order, that were passed to Compress.
	Dictionary []Word
	// Parallel is the number of worker goroutines for chunk decoding.
	// 0 = GOMAXPROCS, 1 = sequential.
	Parallel int
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with no static dictionary and
// no input limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
