// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

import "encoding/binary"

// Unsigned LEB128 (base-128 with continuation bit) helpers. Lengths,
// dictionary codes, and header counts all use this encoding.

// appendUvarint appends v to dst in LEB128 form.
func appendUvarint(dst []byte, v uint64) []byte {
	return binary.AppendUvarint(dst, v)
}

// readUvarint decodes one LEB128 value from src at *pos and advances *pos.
// A value that runs past the buffer or overflows 64 bits is reported as
// ErrTruncatedStream.
func readUvarint(src []byte, pos *int) (uint64, error) {
	if *pos > len(src) {
		return 0, ErrTruncatedStream
	}

	v, n := binary.Uvarint(src[*pos:])
	if n <= 0 {
		return 0, ErrTruncatedStream
	}

	*pos += n
	return v, nil
}

// uvarintLen returns the encoded size of v in bytes (1..10).
func uvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
