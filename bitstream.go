// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/abizip

package abizip

// Token serialization: one tag byte followed by the payload for that kind.
// readToken is total over anything appendToken produces; on foreign input
// it fails with ErrTruncatedStream (a declared length runs past the buffer)
// or ErrUnknownTag (the tag or its payload is not a valid encoding).

// appendToken serializes t to dst.
func appendToken(dst []byte, t *token) []byte {
	switch t.kind {
	case kindRaw:
		dst = append(dst, tagRaw)
		dst = append(dst, t.word[:]...)

	case kindZeroTrimmed:
		dst = append(dst, tagZeroTrimmed, byte(t.length))
		dst = append(dst, t.word[WordSize-t.length:]...)

	case kindDictDefine:
		dst = append(dst, tagDictDefine)
		dst = append(dst, t.word[:]...)

	case kindDictRef:
		dst = append(dst, tagDictRef)
		dst = appendUvarint(dst, t.code)

	case kindDelta:
		sl := byte(magnitudeLen(&t.mag))
		if t.neg {
			sl |= deltaSignBit
		}
		dst = append(dst, tagDelta, sl)
		dst = append(dst, t.mag.Bytes()...)

	default:
		panic("abizip: invalid token kind")
	}

	return dst
}

// readToken decodes one token from src at *pos and advances *pos.
// Zero-trimmed words come back fully padded; dictionary references and
// deltas still need chunk context (the value table and the previous word)
// to resolve into a word.
func readToken(src []byte, pos *int) (token, error) {
	var t token

	if *pos >= len(src) {
		return t, ErrTruncatedStream
	}

	tag := src[*pos]
	*pos++

	switch tag {
	case tagRaw, tagDictDefine:
		if *pos+WordSize > len(src) {
			return t, ErrTruncatedStream
		}

		copy(t.word[:], src[*pos:])
		*pos += WordSize

		t.kind = kindRaw
		if tag == tagDictDefine {
			t.kind = kindDictDefine
		}

	case tagZeroTrimmed:
		if *pos >= len(src) {
			return t, ErrTruncatedStream
		}

		n := int(src[*pos])
		*pos++
		if n > maxZeroTrimLen {
			return t, ErrUnknownTag
		}

		if *pos+n > len(src) {
			return t, ErrTruncatedStream
		}

		copy(t.word[WordSize-n:], src[*pos:*pos+n])
		*pos += n

		t.kind = kindZeroTrimmed
		t.length = n

	case tagDictRef:
		code, err := readUvarint(src, pos)
		if err != nil {
			return t, err
		}

		t.kind = kindDictRef
		t.code = code

	case tagDelta:
		if *pos >= len(src) {
			return t, ErrTruncatedStream
		}

		sl := src[*pos]
		*pos++

		n := int(sl & deltaLenMask)
		if n > maxDeltaLen {
			return t, ErrUnknownTag
		}

		if *pos+n > len(src) {
			return t, ErrTruncatedStream
		}

		t.mag.SetBytes(src[*pos : *pos+n])
		*pos += n

		t.kind = kindDelta
		t.neg = sl&deltaSignBit != 0

	default:
		return t, ErrUnknownTag
	}

	return t, nil
}
