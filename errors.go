// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrMalformedInput is returned by Compress when the caller asserts
	// word alignment (RequireAligned) and the input is not a multiple of
	// 32 bytes after the selector.
	ErrMalformedInput = errors.New("malformed input: not word-aligned")
	// ErrTruncatedStream is returned when a compressed buffer is shorter
	// than its own declared lengths, or its declared word count does not
	// match the decoded token stream.
	ErrTruncatedStream = errors.New("truncated compressed stream")
	// ErrUnknownTag is returned when a tag byte, header flag, or token
	// payload does not correspond to any valid encoding at that position.
	ErrUnknownTag = errors.New("unknown token tag")

	// ErrInputTooLarge is returned when DecompressFromReader reads more
	// than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
