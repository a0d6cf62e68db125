// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

import (
	"io"

	"github.com/holiman/uint256"
)

// Decompress reconstructs the original buffer from a compressed stream.
// opts may be nil unless compression used a static dictionary. Bytes after
// a complete stream are ignored (use DecompressN to detect them). Either
// the full original buffer is returned or a nil buffer with
// ErrTruncatedStream / ErrUnknownTag; no partial output is ever visible.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := decompressCore(src, opts)
	return out, err
}

// DecompressN decompresses one stream from src and additionally returns
// the number of input bytes consumed, for advancing over back-to-back
// compressed blocks.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	return decompressCore(src, opts)
}

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own. If opts.MaxInputSize > 0 and more bytes are
// read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// decompressCore parses the header, splits the declared chunks, decodes
// them (in parallel when there is more than one), and reassembles the
// original buffer. Returns (buffer, input bytes consumed, nil) on success.
func decompressCore(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return nil, 0, ErrTruncatedStream
	}

	var p payload
	pos := 0

	flags := src[pos]
	pos++
	if flags&flagReserved != 0 {
		return nil, 0, ErrUnknownTag
	}

	if flags&flagHasSelector != 0 {
		if pos+SelectorSize > len(src) {
			return nil, 0, ErrTruncatedStream
		}

		copy(p.selector[:], src[pos:])
		p.hasSelector = true
		pos += SelectorSize
	}

	wordCount, err := readUvarint(src, &pos)
	if err != nil {
		return nil, 0, err
	}

	trailingLen, err := readUvarint(src, &pos)
	if err != nil {
		return nil, 0, err
	}

	chunkCount, err := readUvarint(src, &pos)
	if err != nil {
		return nil, 0, err
	}

	// Each chunk needs at least one length byte, so a declared count beyond
	// the remaining buffer can only be a corrupt header.
	if chunkCount > uint64(len(src)-pos) {
		return nil, 0, ErrTruncatedStream
	}

	chunks := make([][]byte, chunkCount)
	for i := range chunks {
		n, err := readUvarint(src, &pos)
		if err != nil {
			return nil, 0, err
		}

		if n > uint64(len(src)-pos) {
			return nil, 0, ErrTruncatedStream
		}

		chunks[i] = src[pos : pos+int(n)]
		pos += int(n)
	}

	if trailingLen > uint64(len(src)-pos) {
		return nil, 0, ErrTruncatedStream
	}
	p.trailing = src[pos : pos+int(trailingLen)]
	pos += int(trailingLen)

	parts := make([][]Word, len(chunks))
	errs := make([]error, len(chunks))
	runChunks(len(chunks), workerCount(opts.Parallel, len(chunks)), func(i int) {
		parts[i], errs[i] = decodeChunk(chunks[i], opts.Dictionary)
	})

	// First failing chunk by index, for determinism.
	for _, chunkErr := range errs {
		if chunkErr != nil {
			return nil, 0, chunkErr
		}
	}

	total := 0
	for _, ws := range parts {
		total += len(ws)
	}
	if uint64(total) != wordCount {
		return nil, 0, ErrTruncatedStream
	}

	p.words = make([]Word, 0, total)
	for _, ws := range parts {
		p.words = append(p.words, ws...)
	}

	return p.serialize(), pos, nil
}

// decodeChunk walks one chunk's token stream and reconstructs its words.
// Dictionary and previous-word context are chunk-local, mirroring the
// encoder. A delta with no preceding word or a reference to an undefined
// code cannot be produced by the encoder and is rejected as ErrUnknownTag.
func decodeChunk(data []byte, static []Word) ([]Word, error) {
	// Every token occupies at least two bytes.
	words := make([]Word, 0, len(data)/2+1)
	table := dictTable{static: static}

	var prev uint256.Int
	havePrev := false

	pos := 0
	for pos < len(data) {
		tok, err := readToken(data, &pos)
		if err != nil {
			return nil, err
		}

		var w Word
		switch tok.kind {
		case kindRaw, kindZeroTrimmed:
			w = tok.word

		case kindDictDefine:
			w = tok.word
			table.add(w)

		case kindDictRef:
			var ok bool
			w, ok = table.resolve(tok.code)
			if !ok {
				return nil, ErrUnknownTag
			}

		case kindDelta:
			if !havePrev {
				return nil, ErrUnknownTag
			}

			var cur uint256.Int
			if tok.neg {
				cur.Sub(&prev, &tok.mag)
			} else {
				cur.Add(&prev, &tok.mag)
			}
			w = Word(cur.Bytes32())
		}

		words = append(words, w)
		prev.SetBytes32(w[:])
		havePrev = true
	}

	return words, nil
}
