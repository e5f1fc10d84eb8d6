package dto

import (
	"bytes"
	"encoding/json"
)

// NullKeys reports which of the given JSON keys were sent as an
// explicit null. Pointer fields decode null and absent identically, so
// PATCH handlers use this to tell "clear this field" apart from "leave
// it alone".
func NullKeys(body []byte, keys ...string) map[string]bool {
	nulls := make(map[string]bool, len(keys))
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nulls
	}
	for _, key := range keys {
		if v, ok := raw[key]; ok && string(bytes.TrimSpace(v)) == "null" {
			nulls[key] = true
		}
	}
	return nulls
}
