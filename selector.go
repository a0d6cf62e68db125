// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

import "github.com/holiman/uint256"

// chooseToken picks the cheapest encoding for w. Candidates are evaluated
// in the fixed tie-break order DictionaryRef < ZeroTrimmed < Delta < Raw
// (strict cost comparison keeps the earlier form on ties), preferring reuse
// of prior structure over paying full cost.
//
// A DictionaryDefine pre-empts the per-word comparison: it costs as much as
// Raw now, so it is emitted only when the two-pass accounting shows the
// remaining occurrences amortize it below the value's cheapest
// non-dictionary encoding.
//
// prev is the preceding word's magnitude; remaining is the number of later
// occurrences of w in the same chunk. chooseToken never fails: Raw is
// always applicable.
func chooseToken(w Word, prev *uint256.Int, havePrev bool, dict *dictionary, remaining int) token {
	sig := w.significantLen()

	code, known := dict.code(w)

	if !known && remaining > 0 {
		bestAlt := costRaw
		if sig <= maxZeroTrimLen {
			bestAlt = 2 + sig
		}
		refCost := 1 + uvarintLen(dict.nextCode())
		if costDictDefine+remaining*refCost < (remaining+1)*bestAlt {
			return token{kind: kindDictDefine, word: w, code: dict.define(w)}
		}
	}

	best := token{kind: kindRaw, word: w}
	bestCost := costRaw + 1 // sentinel so Raw itself enters the comparison

	if known {
		if c := 1 + uvarintLen(code); c < bestCost {
			best = token{kind: kindDictRef, code: code}
			bestCost = c
		}
	}

	if sig <= maxZeroTrimLen {
		if c := 2 + sig; c < bestCost {
			best = token{kind: kindZeroTrimmed, word: w, length: sig}
			bestCost = c
		}
	}

	if havePrev {
		cur := w.toUint256()
		var mag uint256.Int
		neg := cur.Cmp(prev) < 0
		if neg {
			mag.Sub(prev, cur)
		} else {
			mag.Sub(cur, prev)
		}

		// Delta is legal only when it beats zero-trimming the same word.
		if ml := magnitudeLen(&mag); ml < sig {
			if c := 2 + ml; c < bestCost {
				best = token{kind: kindDelta, neg: neg}
				best.mag = mag
				bestCost = c
			}
		}
	}

	if costRaw < bestCost {
		best = token{kind: kindRaw, word: w}
	}

	return best
}
