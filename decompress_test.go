package abizip

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecompress_EmptyInput(t *testing.T) {
	if _, err := Decompress(nil, nil); !errors.Is(err, ErrTruncatedStream) {
		t.Fatalf("expected ErrTruncatedStream, got %v", err)
	}
}

func TestDecompress_ReservedFlagBits(t *testing.T) {
	for _, flags := range []byte{0x02, 0x80, 0xff} {
		_, err := Decompress([]byte{flags, 0x00, 0x00, 0x00}, nil)
		if !errors.Is(err, ErrUnknownTag) {
			t.Fatalf("flags %#x: expected ErrUnknownTag, got %v", flags, err)
		}
	}
}

func TestDecompress_TruncatedInputAlwaysFails(t *testing.T) {
	data := multicallCalldata(16)
	cmp, err := Compress(data, &CompressOptions{HasSelector: true})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	for cut := 1; cut < len(cmp); cut++ {
		if _, decErr := Decompress(cmp[:cut], nil); decErr == nil {
			t.Fatalf("expected error for prefix of %d bytes", cut)
		}
	}
}

func TestDecompress_WordCountMismatch(t *testing.T) {
	// Header declares two words, the single chunk holds one token.
	stream := []byte{
		0x00,             // flags
		0x02,             // word count
		0x00,             // trailing length
		0x01,             // chunk count
		0x02,             // chunk byte length
		tagZeroTrimmed, 0x00, // one zero word
	}

	if _, err := Decompress(stream, nil); !errors.Is(err, ErrTruncatedStream) {
		t.Fatalf("expected ErrTruncatedStream, got %v", err)
	}
}

func TestDecompress_ChunkCountBeyondBuffer(t *testing.T) {
	stream := []byte{0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x7f}
	if _, err := Decompress(stream, nil); !errors.Is(err, ErrTruncatedStream) {
		t.Fatalf("expected ErrTruncatedStream, got %v", err)
	}
}

func TestDecompress_DeltaWithoutPreviousWord(t *testing.T) {
	stream := []byte{
		0x00,                   // flags
		0x01,                   // word count
		0x00,                   // trailing length
		0x01,                   // chunk count
		0x03,                   // chunk byte length
		tagDelta, 0x01, 0x05, // delta as first token
	}

	if _, err := Decompress(stream, nil); !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
}

func TestDecompress_UndefinedDictionaryCode(t *testing.T) {
	stream := []byte{
		0x00,             // flags
		0x01,             // word count
		0x00,             // trailing length
		0x01,             // chunk count
		0x02,             // chunk byte length
		tagDictRef, 0x00, // reference with nothing defined
	}

	if _, err := Decompress(stream, nil); !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
}

func TestDecompress_UnknownTagInsideChunk(t *testing.T) {
	stream := []byte{
		0x00,       // flags
		0x01,       // word count
		0x00,       // trailing length
		0x01,       // chunk count
		0x01,       // chunk byte length
		0x7e,       // not a token tag
	}

	if _, err := Decompress(stream, nil); !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
}

func TestDecompress_OutputIsNotACompressedStream(t *testing.T) {
	// Decompression output is raw calldata, not a compressed stream;
	// feeding it back must fail deterministically for this corpus (the
	// selector byte 0xa9 sets reserved header bits).
	data := erc20TransferCalldata()
	cmp, err := Compress(data, &CompressOptions{HasSelector: true})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(cmp, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	_, err1 := Decompress(out, nil)
	_, err2 := Decompress(out, nil)
	if err1 == nil || !errors.Is(err2, err1) {
		t.Fatalf("decode-of-decode should fail deterministically, got %v / %v", err1, err2)
	}
}

func TestDecompressN_BackToBackStreams(t *testing.T) {
	first := erc20TransferCalldata()
	second := multicallCalldata(4)

	cmpFirst, err := Compress(first, &CompressOptions{HasSelector: true})
	if err != nil {
		t.Fatalf("Compress first failed: %v", err)
	}
	cmpSecond, err := Compress(second, &CompressOptions{HasSelector: true})
	if err != nil {
		t.Fatalf("Compress second failed: %v", err)
	}

	src := append(append([]byte(nil), cmpFirst...), cmpSecond...)

	out, nRead, err := DecompressN(src, nil)
	if err != nil {
		t.Fatalf("DecompressN first failed: %v", err)
	}
	if nRead != len(cmpFirst) {
		t.Fatalf("nRead = %d, want %d", nRead, len(cmpFirst))
	}
	if !bytes.Equal(out, first) {
		t.Fatal("first block mismatch")
	}

	out, nRead, err = DecompressN(src[nRead:], nil)
	if err != nil {
		t.Fatalf("DecompressN second failed: %v", err)
	}
	if nRead != len(cmpSecond) {
		t.Fatalf("nRead = %d, want %d", nRead, len(cmpSecond))
	}
	if !bytes.Equal(out, second) {
		t.Fatal("second block mismatch")
	}
}
