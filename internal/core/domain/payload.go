package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodePayload decodes a cached payload into into. Unknown fields and
// trailing data are rejected, so a payload of another shape never decodes
// as an empty value of this one.
func DecodePayload(data []byte, into any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("trailing data after payload: %w", ErrDeserialization)
	}
	return nil
}

// decodeRequired is DecodePayload with every key in required present.
func decodeRequired(data []byte, into any, required ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("missing %q: %w", key, ErrDeserialization)
		}
	}
	return DecodePayload(data, into)
}

// UnmarshalJSON requires the results key.
func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	type plain SearchResponse
	return decodeRequired(data, (*plain)(r), "results")
}

// UnmarshalJSON requires the title and markdown_content keys.
func (p *ArticlePayload) UnmarshalJSON(data []byte) error {
	type plain ArticlePayload
	return decodeRequired(data, (*plain)(p), "title", "markdown_content")
}
