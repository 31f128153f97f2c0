package bridge

import (
	"sync"

	"github.com/google/uuid"

	"github.com/samcharles93/tokbridge/internal/hftok"
	"github.com/samcharles93/tokbridge/internal/logger"
)

// NullHandle is the sentinel returned by Create on failure and accepted as a
// harmless no-op everywhere else.
const NullHandle uint64 = 0

type entry struct {
	enc Encoder
	// uid correlates log lines for one instance across its lifetime;
	// handles alone are ambiguous once a process embeds several bridges.
	uid string
}

// Registry owns every live tokenizer instance and issues the integer handles
// hosts hold. Handles count up from 1 and are never reused, so a destroyed
// handle can never alias a later instance.
type Registry struct {
	mu    sync.Mutex
	next  uint64
	items map[uint64]*entry

	load LoadFunc
	log  logger.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(log logger.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// WithLoader replaces the model loader. The default wraps the native
// HuggingFace tokenizers library.
func WithLoader(load LoadFunc) Option {
	return func(r *Registry) {
		r.load = load
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		next:  1,
		items: make(map[uint64]*entry),
		load: func(model []byte) (Encoder, error) {
			return hftok.FromBytes(model)
		},
		log: logger.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create loads a tokenizer from serialized model bytes and returns its
// handle, or NullHandle if the model is rejected. Nothing is retained on
// failure.
func (r *Registry) Create(model []byte) uint64 {
	enc, err := r.load(model)
	if err != nil {
		r.log.Warn("tokenizer model rejected", "error", err, "bytes", len(model))
		return NullHandle
	}

	e := &entry{enc: enc, uid: uuid.NewString()}

	r.mu.Lock()
	handle := r.next
	r.next++
	r.items[handle] = e
	r.mu.Unlock()

	r.log.Debug("tokenizer created", "handle", handle, "instance", e.uid)
	return handle
}

// Tokenize encodes text with the tokenizer behind handle.
//
// A NullHandle or a handle with no live instance yields "{}". An encode or
// marshal failure yields the empty-arrays payload. Everything else yields
// {"ids":[...],"attention_mask":[...]} with equal-length arrays in encoder
// order.
func (r *Registry) Tokenize(handle uint64, text string) string {
	e := r.lookup(handle)
	if e == nil {
		return NullResultJSON
	}

	ids, mask, err := e.enc.Encode(text)
	if err != nil {
		r.log.Warn("encode failed", "handle", handle, "instance", e.uid, "error", err)
		return EmptyResultJSON
	}
	return marshalResult(ids, mask)
}

// Destroy releases the tokenizer behind handle. Unknown handles, including
// NullHandle and handles already destroyed, are ignored.
func (r *Registry) Destroy(handle uint64) {
	if handle == NullHandle {
		return
	}

	r.mu.Lock()
	e, ok := r.items[handle]
	if ok {
		delete(r.items, handle)
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	if err := e.enc.Close(); err != nil {
		r.log.Warn("tokenizer close failed", "handle", handle, "instance", e.uid, "error", err)
		return
	}
	r.log.Debug("tokenizer destroyed", "handle", handle, "instance", e.uid)
}

// Len reports the number of live instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// lookup resolves a handle under the table lock. Encoding happens outside
// the lock; serializing calls on one instance is the caller's contract.
func (r *Registry) lookup(handle uint64) *entry {
	if handle == NullHandle {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[handle]
}
