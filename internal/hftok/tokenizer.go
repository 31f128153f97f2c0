// Package hftok adapts the HuggingFace tokenizers native library
// (github.com/daulet/tokenizers) to the narrow surface the bridge needs:
// load a model from bytes, encode text, release the instance.
package hftok

import (
	"errors"
	"fmt"

	"github.com/daulet/tokenizers"
)

var ErrEmptyModel = errors.New("empty tokenizer model")

// Tokenizer wraps a single native tokenizer instance. It is not safe for
// concurrent use; callers serialize access per instance.
type Tokenizer struct {
	tk *tokenizers.Tokenizer
}

// FromBytes loads a tokenizer from serialized tokenizer.json bytes. The model
// format is owned entirely by the wrapped library; any parse or validation
// failure surfaces as an error with nothing allocated.
func FromBytes(data []byte) (*Tokenizer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyModel
	}
	tk, err := tokenizers.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer model: %w", err)
	}
	return &Tokenizer{tk: tk}, nil
}

// Encode runs text through the native encoder with special tokens enabled and
// returns token ids with a parallel attention mask. The two slices are always
// equal length and never nil. A panic escaping the native layer is converted
// to an error so a bad input cannot take down the host.
func (t *Tokenizer) Encode(text string) (ids, mask []uint32, err error) {
	if t == nil || t.tk == nil {
		return nil, nil, errors.New("tokenizer is closed")
	}
	defer func() {
		if rec := recover(); rec != nil {
			ids, mask = nil, nil
			err = fmt.Errorf("panic in Encode: %v", rec)
		}
	}()

	enc := t.tk.EncodeWithOptions(text, true, tokenizers.WithReturnAttentionMask())

	ids = enc.IDs
	if ids == nil {
		ids = []uint32{}
	}
	mask = enc.AttentionMask
	if len(mask) != len(ids) {
		// The library omits the mask for some configurations. Without
		// padding every produced position is real content.
		mask = make([]uint32, len(ids))
		for i := range mask {
			mask[i] = 1
		}
	}
	return ids, mask, nil
}

// VocabSize reports the wrapped model's vocabulary size.
func (t *Tokenizer) VocabSize() uint32 {
	if t == nil || t.tk == nil {
		return 0
	}
	return t.tk.VocabSize()
}

// Close releases the native instance. Further calls on the receiver return
// errors rather than touching freed memory. Close is idempotent.
func (t *Tokenizer) Close() error {
	if t == nil || t.tk == nil {
		return nil
	}
	err := t.tk.Close()
	t.tk = nil
	return err
}
