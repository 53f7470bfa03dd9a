package validation

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrMalformedPayload is returned by ParsePayload when the body is not a
// valid JSON object.
var ErrMalformedPayload = errors.New("payload is not a valid JSON object")

// Payload is the parsed request body: field name → decoded JSON value.
// Strings decode as string, numbers as json.Number, booleans as bool, null
// as nil, arrays as []any, and objects as map[string]any.
type Payload map[string]any

// ParsePayload decodes an owned byte buffer into a Payload. Numbers are kept
// as json.Number so the engine can distinguish numeric literals from strings
// without precision loss.
func ParsePayload(body []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var p Payload
	if err := dec.Decode(&p); err != nil {
		return nil, ErrMalformedPayload
	}
	return p, nil
}
