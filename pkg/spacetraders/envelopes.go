package spacetraders

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelopes mirror the JSON wrappers the game server puts around payloads.
// They carry no error semantics of their own: whether a body is an error is
// decided by the HTTP status alone.

// Meta is the pagination cursor returned with list responses.
type Meta struct {
	// Total counts every matching item, not only those on the current page.
	Total int `json:"total" yaml:"total"`
	Page  int `json:"page"  yaml:"page"`
	Limit int `json:"limit" yaml:"limit"`
}

// DataEnvelope is { "data": T }.
type DataEnvelope[T any] struct {
	Data T `json:"data" yaml:"data"`
}

// UnmarshalJSON requires the data key to be present and non-null.
func (e *DataEnvelope[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data json.RawMessage `json:"data"`
	}

	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err //nolint:wrapcheck // surfaced as-is inside a TransportError
	}

	err = requireKey("data", raw.Data)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw.Data, &e.Data) //nolint:wrapcheck // see above
}

// Unwrap returns the payload.
func (e DataEnvelope[T]) Unwrap() T {
	return e.Data
}

// PageEnvelope is { "data": [T], "meta": Meta }.
type PageEnvelope[T any] struct {
	Data []T `json:"data" yaml:"data"`
	Meta Meta `json:"meta" yaml:"meta"`
}

// UnmarshalJSON requires both the data and meta keys.
func (e *PageEnvelope[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data json.RawMessage `json:"data"`
		Meta json.RawMessage `json:"meta"`
	}

	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err //nolint:wrapcheck // surfaced as-is inside a TransportError
	}

	err = requireKey("data", raw.Data)
	if err != nil {
		return err
	}

	err = requireKey("meta", raw.Meta)
	if err != nil {
		return err
	}

	err = json.Unmarshal(raw.Data, &e.Data)
	if err != nil {
		return err //nolint:wrapcheck // see above
	}

	return json.Unmarshal(raw.Meta, &e.Meta) //nolint:wrapcheck // see above
}

// Unwrap returns the page items and its pagination cursor.
func (e PageEnvelope[T]) Unwrap() ([]T, Meta) {
	return e.Data, e.Meta
}

// ArrayEnvelope is { "data": [T] }. A bare [T] is accepted as well, since
// some endpoints of earlier API versions answered that way.
type ArrayEnvelope[T any] struct {
	Data []T `json:"data" yaml:"data"`
}

// UnmarshalJSON accepts both the wrapped and the bare array form.
func (e *ArrayEnvelope[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &e.Data) //nolint:wrapcheck // surfaced inside a TransportError
	}

	var wrapped DataEnvelope[[]T]

	err := json.Unmarshal(trimmed, &wrapped)
	if err != nil {
		return err //nolint:wrapcheck // see above
	}

	e.Data = wrapped.Data

	return nil
}

// Unwrap returns the items.
func (e ArrayEnvelope[T]) Unwrap() []T {
	return e.Data
}

// ErrorEnvelope is { "error": E }.
type ErrorEnvelope[E any] struct {
	Error E `json:"error" yaml:"error"`
}

// UnmarshalJSON requires the error key to be present and non-null.
func (e *ErrorEnvelope[E]) UnmarshalJSON(b []byte) error {
	var raw struct {
		Error json.RawMessage `json:"error"`
	}

	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err //nolint:wrapcheck // surfaced as-is inside a TransportError
	}

	err = requireKey("error", raw.Error)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw.Error, &e.Error) //nolint:wrapcheck // see above
}

// Unwrap returns the error payload.
func (e ErrorEnvelope[E]) Unwrap() E {
	return e.Error
}

// TypeTagged is { "type": T }, used for enum values nested one level down.
type TypeTagged[T any] struct {
	Type T `json:"type" yaml:"type"`
}

// Unwrap returns the tagged value.
func (e TypeTagged[T]) Unwrap() T {
	return e.Type
}

func requireKey(key string, raw json.RawMessage) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("%w: %q", ErrMissingEnvelopeKey, key)
	}

	return nil
}
