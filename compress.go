// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

import "github.com/holiman/uint256"

// span is a half-open chunk range over the word sequence.
type span struct {
	start, end int
}

// Compress compresses src into a self-describing stream. opts may be nil
// (raw data without a selector, automatic chunking). The only failure is
// ErrMalformedInput when RequireAligned is set and src is not word-aligned
// after the selector.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	p, err := parsePayload(src, opts.HasSelector, opts.RequireAligned)
	if err != nil {
		return nil, err
	}

	chunks := partitionWords(len(p.words), opts.ChunkWords)
	parts := make([][]byte, len(chunks))
	runChunks(len(chunks), workerCount(opts.Parallel, len(chunks)), func(i int) {
		parts[i] = encodeChunk(p.words[chunks[i].start:chunks[i].end], opts.Dictionary)
	})

	size := 1 + uvarintLen(uint64(len(p.words))) +
		uvarintLen(uint64(len(p.trailing))) +
		uvarintLen(uint64(len(parts))) +
		len(p.trailing)
	if p.hasSelector {
		size += SelectorSize
	}
	for _, part := range parts {
		size += uvarintLen(uint64(len(part))) + len(part)
	}

	out := make([]byte, 0, size)

	var flags byte
	if p.hasSelector {
		flags |= flagHasSelector
	}
	out = append(out, flags)
	if p.hasSelector {
		out = append(out, p.selector[:]...)
	}

	out = appendUvarint(out, uint64(len(p.words)))
	out = appendUvarint(out, uint64(len(p.trailing)))
	out = appendUvarint(out, uint64(len(parts)))

	for _, part := range parts {
		out = appendUvarint(out, uint64(len(part)))
		out = append(out, part...)
	}

	// The unaligned tail rides along uncompressed.
	out = append(out, p.trailing...)

	return out, nil
}

// partitionWords splits n words into chunk spans. With chunkWords <= 0 the
// default policy applies: a single chunk below parallelMinWords (best
// ratio, the dictionary spans the whole payload), fixed defaultChunkWords
// chunks above it.
func partitionWords(n, chunkWords int) []span {
	if n == 0 {
		return nil
	}

	cw := chunkWords
	if cw <= 0 {
		cw = n
		if n >= parallelMinWords {
			cw = defaultChunkWords
		}
	}

	spans := make([]span, 0, (n+cw-1)/cw)
	for start := 0; start < n; start += cw {
		spans = append(spans, span{start: start, end: min(start+cw, n)})
	}

	return spans
}

// encodeChunk runs the two-pass encoding of one chunk: tally value
// frequencies, then select and serialize one token per word. The chunk owns
// its dictionary and its "previous word" context, so chunks are
// independent pure functions over disjoint input slices.
func encodeChunk(words []Word, static []Word) []byte {
	freq := tallyFrequencies(words)
	dict := newDictionary(static)

	var prev uint256.Int
	havePrev := false

	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		freq[w]--
		tok := chooseToken(w, &prev, havePrev, dict, freq[w])
		out = appendToken(out, &tok)

		prev.SetBytes32(w[:])
		havePrev = true
	}

	return out
}
