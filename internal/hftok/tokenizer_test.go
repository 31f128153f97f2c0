package hftok

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func loadFixture(t *testing.T) *Tokenizer {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "tokenizer.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	tok, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes returned error: %v", err)
	}
	t.Cleanup(func() {
		_ = tok.Close()
	})
	return tok
}

func TestFromBytesRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not json", []byte("definitely not a tokenizer")},
		{"wrong schema", []byte(`{"model": "nope"}`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := FromBytes(tc.data)
			if err == nil {
				_ = tok.Close()
				t.Fatalf("expected error for %s input", tc.name)
			}
			if tok != nil {
				t.Fatalf("expected nil tokenizer on failure, got %v", tok)
			}
		})
	}
}

func TestFromBytesEmptyModelError(t *testing.T) {
	t.Parallel()

	_, err := FromBytes(nil)
	if !errors.Is(err, ErrEmptyModel) {
		t.Fatalf("expected ErrEmptyModel, got %v", err)
	}
}

func TestEncodeHello(t *testing.T) {
	tok := loadFixture(t)

	ids, mask, err := tok.Encode("hello")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if len(ids) == 0 {
		t.Fatal("expected at least one token id")
	}
	if len(mask) != len(ids) {
		t.Fatalf("mask length %d does not match ids length %d", len(mask), len(ids))
	}
	for i, m := range mask {
		if m != 1 {
			t.Fatalf("mask[%d] = %d, want 1", i, m)
		}
	}
}

func TestEncodeAddsSpecialTokens(t *testing.T) {
	tok := loadFixture(t)

	ids, _, err := tok.Encode("hello")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	// Template post-processor wraps the sequence in [CLS] ... [SEP].
	if ids[0] != 0 {
		t.Fatalf("ids[0] = %d, want [CLS] id 0", ids[0])
	}
	if ids[len(ids)-1] != 1 {
		t.Fatalf("ids[%d] = %d, want [SEP] id 1", len(ids)-1, ids[len(ids)-1])
	}
}

func TestEncodeEmptyText(t *testing.T) {
	tok := loadFixture(t)

	ids, mask, err := tok.Encode("")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if len(ids) != len(mask) {
		t.Fatalf("ids length %d does not match mask length %d", len(ids), len(mask))
	}
	if ids == nil || mask == nil {
		t.Fatal("expected non-nil slices for empty input")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	tok := loadFixture(t)

	first, _, err := tok.Encode("hello world")
	if err != nil {
		t.Fatalf("first Encode returned error: %v", err)
	}
	second, _, err := tok.Encode("hello world")
	if err != nil {
		t.Fatalf("second Encode returned error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("ids[%d] differ: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestVocabSize(t *testing.T) {
	tok := loadFixture(t)

	if got := tok.VocabSize(); got == 0 {
		t.Fatal("expected non-zero vocab size")
	}
}

func TestCloseIdempotent(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "tokenizer.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	tok, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes returned error: %v", err)
	}
	if err := tok.Close(); err != nil {
		t.Fatalf("first Close returned error: %v", err)
	}
	if err := tok.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
	if _, _, err := tok.Encode("hello"); err == nil {
		t.Fatal("expected error encoding on a closed tokenizer")
	}
}
