// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

/*
Package abizip compresses ABI-encoded transaction payloads (calldata) for
EVM-compatible chains. It is specialized to the statistical structure of
ABI words: heavy zero padding, repeated addresses and selectors, and small
integers. It is not a general-purpose compressor (no entropy coding, no
LZ back-references).

The input is split into an optional 4-byte function selector, a sequence of
32-byte words, and an uncompressed trailing tail (0–31 bytes). Each word is
encoded as the cheapest of five token forms: raw copy, zero-trimmed
significant bytes, dictionary define/reference for repeated values, or a
signed delta from the previous word. Large payloads are split into
fixed-size word chunks compressed independently (each chunk carries its own
dictionary), so both directions parallelize.

Decompression reproduces the original buffer bit for bit:

	Decompress(Compress(x)) == x

for every input Compress accepts.

# Compress

Options may be nil (raw data, no selector, automatic chunking):

	out, err := abizip.Compress(data, nil)
	out, err := abizip.Compress(calldata, &abizip.CompressOptions{HasSelector: true})

# Decompress

The compressed stream is self-describing; options are only needed for a
pre-shared static dictionary or worker tuning:

	out, err := abizip.Decompress(compressed, nil)

To get the number of input bytes consumed (e.g. for back-to-back compressed
blocks):

	out, nRead, err := abizip.DecompressN(compressed, nil)
	// advance: compressed = compressed[nRead:]

# Static dictionary

Well-known 32-byte values (token addresses, protocol constants) that both
sides agree on in advance can be referenced without ever being transmitted:

	dict := []abizip.Word{wellKnownAddr}
	out, err := abizip.Compress(calldata, &abizip.CompressOptions{Dictionary: dict})
	back, err := abizip.Decompress(out, &abizip.DecompressOptions{Dictionary: dict})

Compressor and decompressor must supply the same dictionary.
*/
package abizip
