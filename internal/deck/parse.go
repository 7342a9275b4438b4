package deck

import (
	"encoding/json"
	"strings"
)

// Record is one decoded kernel: a JSON object with an identity field and
// any subset of the known kernel fields.
type Record = map[string]any

// Section is one segmenter output: a JSON object tagged with "section",
// "title" and "id" plus the captured source fields.
type Section = map[string]any

// Kind says which of the recognized deck shapes the input matched.
type Kind int

const (
	// KindDeck is an object with a "kernels" array.
	KindDeck Kind = iota
	// KindBareList is a top-level array of kernels.
	KindBareList
	// KindSections is a single kernel that was split into sections.
	KindSections
)

// Result holds the chunk sequence derived from one parse. Chunks are in
// copy order and are never mutated after Parse returns; re-chunking means
// a fresh Parse and a whole new Result.
type Result struct {
	Kind   Kind
	Chunks []map[string]any
}

// Parse decodes raw deck text and derives the chunk sequence. Recognized
// shapes, tried in order:
//
//  1. an object with a "kernels" array — each kernel is one chunk;
//  2. an object with an "id" and at least one of emotional_arc,
//     heat_signature or cubic_attractor — segmented into sections;
//  3. a bare array of kernels.
//
// Anything else is an UnrecognizedShapeError; malformed JSON is a
// DecodeError carrying the decoder's own message.
func Parse(raw string) (*Result, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &DecodeError{Err: err}
	}

	switch v := doc.(type) {
	case map[string]any:
		if kernels, ok := v["kernels"]; ok {
			records, ok := kernels.([]any)
			if !ok {
				return nil, &UnrecognizedShapeError{Reason: `"kernels" is not an array`}
			}
			return recordsResult(KindDeck, records)
		}
		if isSingleKernel(v) {
			sections := Segment(v)
			return &Result{Kind: KindSections, Chunks: sections}, nil
		}
		return nil, &UnrecognizedShapeError{Reason: "no kernels found in document"}

	case []any:
		return recordsResult(KindBareList, v)

	default:
		return nil, &UnrecognizedShapeError{Reason: "document is not an object or array"}
	}
}

// isSingleKernel reports whether an object without a "kernels" key is a
// lone segmentable kernel. The trigger set is deliberately narrower than
// the segmenter's header rule: a record carrying only header-ish fields
// (title, version) is rejected here rather than chunked whole.
func isSingleKernel(m map[string]any) bool {
	if _, ok := m["id"]; !ok {
		return false
	}
	for _, key := range []string{"emotional_arc", "heat_signature", "cubic_attractor"} {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

func recordsResult(kind Kind, records []any) (*Result, error) {
	if len(records) == 0 {
		return nil, &UnrecognizedShapeError{Reason: "no kernels found in document"}
	}
	chunks := make([]map[string]any, 0, len(records))
	for _, r := range records {
		rec, ok := r.(map[string]any)
		if !ok {
			return nil, &UnrecognizedShapeError{Reason: "kernel list contains a non-object entry"}
		}
		chunks = append(chunks, rec)
	}
	return &Result{Kind: kind, Chunks: chunks}, nil
}

// EncodeChunk renders one chunk as the clipboard payload: pretty-printed
// JSON with two-space indentation.
func EncodeChunk(chunk map[string]any) (string, error) {
	out, err := json.MarshalIndent(chunk, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
