// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

import "github.com/holiman/uint256"

// Word is a fixed 32-byte ABI word.
type Word [WordSize]byte

// leadingZeroBytes returns the number of zero bytes before the first
// nonzero byte (32 for the all-zero word).
func (w Word) leadingZeroBytes() int {
	for i := 0; i < WordSize; i++ {
		if w[i] != 0 {
			return i
		}
	}
	return WordSize
}

// significantLen returns the minimal byte count holding the word's value
// (0 for the all-zero word).
func (w Word) significantLen() int {
	return WordSize - w.leadingZeroBytes()
}

// toUint256 returns the word's big-integer magnitude.
func (w Word) toUint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(w[:])
}

// payload is the tokenized form of one input buffer: optional selector,
// word sequence, and an uncompressed trailing tail (0..31 bytes). It lives
// for the duration of a single Compress or Decompress call.
type payload struct {
	selector    [SelectorSize]byte
	hasSelector bool
	words       []Word
	trailing    []byte
}

// parsePayload splits src into selector, 32-byte words, and trailing tail.
// The selector is split off only when hasSelector is set and src holds at
// least 4 bytes. With requireAligned set, a nonzero tail after the selector
// is rejected with ErrMalformedInput; otherwise it is preserved verbatim
// (partial words never satisfy the fixed-width assumptions the token forms
// rely on, so they are copied through uncompressed).
func parsePayload(src []byte, hasSelector, requireAligned bool) (payload, error) {
	var p payload

	body := src
	if hasSelector && len(src) >= SelectorSize {
		copy(p.selector[:], src[:SelectorSize])
		p.hasSelector = true
		body = src[SelectorSize:]
	}

	tail := len(body) % WordSize
	if requireAligned && tail != 0 {
		return payload{}, ErrMalformedInput
	}

	n := len(body) / WordSize
	if n > 0 {
		p.words = make([]Word, n)
		for i := range p.words {
			copy(p.words[i][:], body[i*WordSize:])
		}
	}
	if tail > 0 {
		p.trailing = body[len(body)-tail:]
	}

	return p, nil
}

// serializedLen returns the byte length of the original buffer.
func (p *payload) serializedLen() int {
	n := len(p.words)*WordSize + len(p.trailing)
	if p.hasSelector {
		n += SelectorSize
	}
	return n
}

// serialize reassembles the original buffer: selector + words + tail.
// It is the exact inverse of parsePayload.
func (p *payload) serialize() []byte {
	out := make([]byte, 0, p.serializedLen())
	if p.hasSelector {
		out = append(out, p.selector[:]...)
	}
	for i := range p.words {
		out = append(out, p.words[i][:]...)
	}
	out = append(out, p.trailing...)
	return out
}
