package duty

import (
	"bytes"
	"encoding/json"
	"fmt"

	"customsduty/internal/domain"
)

// Payload is one decoded upstream JSON object.
type Payload map[string]any

// Payloads carries the three raw upstream documents needed for one computation.
// A nil or "null" document is treated as an empty object.
type Payloads struct {
	Tariff       json.RawMessage `json:"tariff"`
	Effective    json.RawMessage `json:"effective"`
	Notification json.RawMessage `json:"notification"`
}

// InvalidPayloadError reports a payload that is present but is not a JSON object.
type InvalidPayloadError struct {
	Payload string
	Kind    string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("%s payload must be a JSON object, got %s", e.Payload, e.Kind)
}

func (e *InvalidPayloadError) Unwrap() error {
	return domain.ErrInvalidPayload
}

// DecodePayload decodes raw into a Payload. Empty input and JSON null yield an
// empty Payload; any other non-object value is an *InvalidPayloadError.
func DecodePayload(name string, raw json.RawMessage) (Payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Payload{}, nil
	}
	if trimmed[0] != '{' {
		return nil, &InvalidPayloadError{Payload: name, Kind: jsonKind(trimmed[0])}
	}

	var p Payload
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, &InvalidPayloadError{Payload: name, Kind: "malformed JSON"}
	}
	return p, nil
}

func jsonKind(first byte) string {
	switch {
	case first == '[':
		return "array"
	case first == '"':
		return "string"
	case first == 't' || first == 'f':
		return "boolean"
	case first == '-' || (first >= '0' && first <= '9'):
		return "number"
	default:
		return "malformed JSON"
	}
}

type decodedPayloads struct {
	tariff       Payload
	effective    Payload
	notification Payload
}

func (p Payloads) decode() (*decodedPayloads, error) {
	tariff, err := DecodePayload("tariff", p.Tariff)
	if err != nil {
		return nil, err
	}
	effective, err := DecodePayload("effective", p.Effective)
	if err != nil {
		return nil, err
	}
	notification, err := DecodePayload("notification", p.Notification)
	if err != nil {
		return nil, err
	}
	return &decodedPayloads{tariff: tariff, effective: effective, notification: notification}, nil
}

// MergePayloads combines the tariff and effective views; on key collision the
// effective view wins. Neither input is modified.
func MergePayloads(tariff, effective Payload) Payload {
	merged := make(Payload, len(tariff)+len(effective))
	for k, v := range tariff {
		merged[k] = v
	}
	for k, v := range effective {
		merged[k] = v
	}
	return merged
}
