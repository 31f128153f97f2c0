package bridge

import json "github.com/goccy/go-json"

// Boundary sentinels. Hosts match these shapes, so they are fixed literals.
const (
	// NullResultJSON is returned when no tokenizer exists behind a handle.
	NullResultJSON = "{}"
	// EmptyResultJSON is returned when the encoder could not produce tokens
	// for an input.
	EmptyResultJSON = `{"ids": [], "attention_mask": []}`
)

type tokenizationResult struct {
	IDs           []uint32 `json:"ids"`
	AttentionMask []uint32 `json:"attention_mask"`
}

// marshalResult renders a successful encoding as the wire payload. A marshal
// failure collapses to the empty-arrays sentinel rather than escaping the
// bridge; there is no secondary error channel to use.
func marshalResult(ids, mask []uint32) string {
	if ids == nil {
		ids = []uint32{}
	}
	if mask == nil {
		mask = []uint32{}
	}
	payload, err := json.Marshal(tokenizationResult{
		IDs:           ids,
		AttentionMask: mask,
	})
	if err != nil {
		return EmptyResultJSON
	}
	return string(payload)
}
