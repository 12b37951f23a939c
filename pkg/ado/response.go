package ado

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is a raw HTTP response with its body fully read.
type Response struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Envelope is a decoded response body. Value is nil when the body has no
// "value" key; Count is nil when the body has no "count" key.
type Envelope struct {
	Body  json.RawMessage
	Value json.RawMessage
	Count *int
}

// ParseEnvelope decodes a response body.
func ParseEnvelope(body []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, ErrInvalidBody
	}

	envelope := &Envelope{Body: json.RawMessage(trimmed)}

	if trimmed[0] != '{' {
		return envelope, nil
	}

	var fields map[string]json.RawMessage

	err := json.Unmarshal(trimmed, &fields)
	if err != nil {
		return nil, fmt.Errorf("parsing envelope: %w", err)
	}

	if value, ok := fields["value"]; ok {
		envelope.Value = value
	}

	if raw, ok := fields["count"]; ok {
		var count int
		if json.Unmarshal(raw, &count) == nil {
			envelope.Count = &count
		}
	}

	return envelope, nil
}

// HasValue reports whether the body carried a "value" key.
func (e *Envelope) HasValue() bool {
	return e.Value != nil
}

// Payload selects the logical payload: the value field if present,
// otherwise the whole body.
func (e *Envelope) Payload() Payload {
	if e.HasValue() {
		return Payload{Data: e.Value, Source: PayloadFromValue}
	}

	return Payload{Data: e.Body, Source: PayloadFromBody}
}

// PayloadSource tells where a payload was taken from.
type PayloadSource int

const (
	// PayloadFromBody means the whole body is the payload.
	PayloadFromBody PayloadSource = iota
	// PayloadFromValue means the payload is the envelope's value field.
	PayloadFromValue
)

// String implements fmt.Stringer.
func (s PayloadSource) String() string {
	if s == PayloadFromValue {
		return "value"
	}

	return "body"
}

// Payload is the extracted result of a call.
type Payload struct {
	Data   json.RawMessage
	Source PayloadSource
}

// Decode unmarshals the payload into v.
func (p Payload) Decode(v interface{}) error {
	err := json.Unmarshal(p.Data, v)
	if err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	return nil
}

// Items returns the elements of a list payload.
func (p Payload) Items() ([]json.RawMessage, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(p.Data), []byte("[")) {
		return nil, ErrPayloadNotList
	}

	var items []json.RawMessage

	err := json.Unmarshal(p.Data, &items)
	if err != nil {
		return nil, fmt.Errorf("decoding list payload: %w", err)
	}

	return items, nil
}

// Len returns the number of elements of a list payload.
func (p Payload) Len() (int, error) {
	items, err := p.Items()
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

// MarshalJSON emits the payload data unchanged.
func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p.Data) == 0 {
		return []byte("null"), nil
	}

	return p.Data, nil
}
