package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process events already carry T
// (or *T). Payloads read back from NATS or the dead-letter file arrive as raw
// JSON or generic maps and are re-decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	var out T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("nil %T payload", v)
		}
		return *v, nil
	case json.RawMessage:
		return out, json.Unmarshal(v, &out)
	case []byte:
		return out, json.Unmarshal(v, &out)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf("re-encode %T payload: %w", input, err)
	}
	return out, json.Unmarshal(data, &out)
}
