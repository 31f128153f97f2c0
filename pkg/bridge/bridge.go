// Package bridge implements the host-facing tokenizer bridge: create a
// tokenizer from serialized model bytes, run text through it, and release it,
// with every instance addressed by an opaque integer handle.
//
// The handle contract is designed for callers on the far side of an FFI
// boundary with no structured error channel: every failure is reported
// in-band. Create returns 0 on failure, Tokenize returns "{}" when there is
// no tokenizer behind the handle, and an empty-arrays payload when encoding
// fails. Handles are registry indices, never raw pointers, so a stale or
// fabricated handle degrades to the "no tokenizer" response instead of
// undefined behavior.
package bridge

// Encoder is the tokenizer surface the registry manages. The default
// implementation wraps the native HuggingFace tokenizers library; tests
// substitute fakes through WithLoader.
type Encoder interface {
	// Encode returns token ids and a parallel attention mask, equal length.
	Encode(text string) (ids, mask []uint32, err error)
	Close() error
}

// LoadFunc materializes an Encoder from serialized model bytes.
type LoadFunc func(model []byte) (Encoder, error)

var defaultRegistry = NewRegistry()

// CreateTokenizer loads a tokenizer into the default registry.
// It returns 0 if the model bytes are rejected.
func CreateTokenizer(model []byte) uint64 {
	return defaultRegistry.Create(model)
}

// Tokenize encodes text with the tokenizer behind handle and returns the
// JSON payload described in the package documentation.
func Tokenize(handle uint64, text string) string {
	return defaultRegistry.Tokenize(handle, text)
}

// DeleteTokenizer releases the tokenizer behind handle. Zero, unknown, and
// already-deleted handles are ignored.
func DeleteTokenizer(handle uint64) {
	defaultRegistry.Destroy(handle)
}
