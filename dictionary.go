// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

// dictionary is the encoder-side value table for one chunk. Codes index the
// combined table: static entries first (codes 0..len(static)-1, never
// transmitted), then dynamically defined values in first-define order. It
// is built fresh per chunk and discarded afterward; nothing is shared
// across chunks or calls.
type dictionary struct {
	lookup map[Word]uint64
	next   uint64
}

// newDictionary seeds the lookup with the static entries. Duplicate static
// values resolve to the lowest code; dynamic codes start after the static
// block either way, so both sides stay aligned.
func newDictionary(static []Word) *dictionary {
	d := &dictionary{
		lookup: make(map[Word]uint64, len(static)),
		next:   uint64(len(static)),
	}
	for i, w := range static {
		if _, ok := d.lookup[w]; !ok {
			d.lookup[w] = uint64(i)
		}
	}
	return d
}

// code returns the dictionary code for w, if w is defined or static.
func (d *dictionary) code(w Word) (uint64, bool) {
	c, ok := d.lookup[w]
	return c, ok
}

// nextCode returns the code the next define would assign.
func (d *dictionary) nextCode() uint64 {
	return d.next
}

// define assigns the next code to w. The caller must emit the matching
// DictionaryDefine token so the decoder derives the same code.
func (d *dictionary) define(w Word) uint64 {
	c := d.next
	d.lookup[w] = c
	d.next++
	return c
}

// tallyFrequencies is the first pass of the two-pass accounting: per-chunk
// occurrence counts that let the selector amortize a define against the
// references it will enable.
func tallyFrequencies(words []Word) map[Word]int {
	freq := make(map[Word]int, len(words))
	for _, w := range words {
		freq[w]++
	}
	return freq
}

// dictTable is the decoder-side counterpart: static entries plus the values
// defined so far in this chunk, in define order.
type dictTable struct {
	static  []Word
	defined []Word
}

// resolve maps a wire code back to its word.
func (t *dictTable) resolve(code uint64) (Word, bool) {
	if code < uint64(len(t.static)) {
		return t.static[code], true
	}
	code -= uint64(len(t.static))
	if code < uint64(len(t.defined)) {
		return t.defined[code], true
	}
	return Word{}, false
}

// add records a newly defined value; its code is implied by define order.
func (t *dictTable) add(w Word) {
	t.defined = append(t.defined, w)
}
