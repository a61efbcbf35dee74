package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeList tolerates the list shapes seen across backends: a bare array,
// or an envelope carrying the array under "content" or "data", in that
// order. Anything else, an envelope with neither field included, yields an
// empty list.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decoding list: %w", err)
		}
		return list, nil
	}

	if trimmed[0] != '{' {
		// Scalars and other non-object bodies carry no list.
		return []T{}, nil
	}

	var env struct {
		Content json.RawMessage `json:"content"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decoding list envelope: %w", err)
	}

	for _, field := range []json.RawMessage{env.Content, env.Data} {
		inner := bytes.TrimSpace(field)
		if len(inner) == 0 || inner[0] != '[' {
			continue
		}
		var list []T
		if err := json.Unmarshal(inner, &list); err != nil {
			return nil, fmt.Errorf("decoding list envelope: %w", err)
		}
		return list, nil
	}

	return []T{}, nil
}
