package spacetraders

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/fivetwenty-io/spacetraders/internal/validation"
)

// The decoder turns an HTTP status and a raw body into either a typed
// payload or a typed error. It is a pure function of its inputs: it keeps no
// state, never retries, and never logs, so it is safe for concurrent use.
//
// Success codes default to 200 when none are given.

// Page is a decoded list response.
type Page[T any] struct {
	Items []T  `json:"items" yaml:"items"`
	Meta  Meta `json:"meta"  yaml:"meta"`
}

// DecodeData decodes a { "data": T } body.
func DecodeData[T any](status int, body []byte, success ...int) (*T, error) {
	var envelope DataEnvelope[T]

	err := decode(status, body, success, &envelope)
	if err != nil {
		return nil, err
	}

	payload := envelope.Unwrap()

	err = checkPayload(status, payload)
	if err != nil {
		return nil, err
	}

	return &payload, nil
}

// DecodePage decodes a { "data": [T], "meta": Meta } body.
func DecodePage[T any](status int, body []byte, success ...int) (*Page[T], error) {
	var envelope PageEnvelope[T]

	err := decode(status, body, success, &envelope)
	if err != nil {
		return nil, err
	}

	items, meta := envelope.Unwrap()

	err = checkPayload(status, items)
	if err != nil {
		return nil, err
	}

	return &Page[T]{Items: items, Meta: meta}, nil
}

// DecodeArray decodes a { "data": [T] } (or bare [T]) body.
func DecodeArray[T any](status int, body []byte, success ...int) ([]T, error) {
	var envelope ArrayEnvelope[T]

	err := decode(status, body, success, &envelope)
	if err != nil {
		return nil, err
	}

	items := envelope.Unwrap()

	err = checkPayload(status, items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// DecodeOptional decodes a { "data": T } body, except that 204 No Content
// yields (nil, nil) without looking at the body.
func DecodeOptional[T any](status int, body []byte, success ...int) (*T, error) {
	if status == http.StatusNoContent {
		return nil, nil //nolint:nilnil // absence is the documented result of 204
	}

	return DecodeData[T](status, body, success...)
}

// DecodeBare decodes a body that is the payload itself, without an envelope.
func DecodeBare[T any](status int, body []byte, success ...int) (*T, error) {
	var payload T

	err := decode(status, body, success, &payload)
	if err != nil {
		return nil, err
	}

	err = checkPayload(status, payload)
	if err != nil {
		return nil, err
	}

	return &payload, nil
}

// DecodeNoContent checks the status of a response whose success body is not
// needed, decoding the error body otherwise.
func DecodeNoContent(status int, body []byte, success ...int) error {
	if isSuccess(status, success) {
		return nil
	}

	return decodeDomainError(status, body)
}

// DecodeError decodes a { "error": {message, code} } body into a DomainError.
// The returned error is either that *DomainError or a *TransportError when
// the body itself is malformed.
func DecodeError(status int, body []byte) error {
	return decodeDomainError(status, body)
}

func decode(status int, body []byte, success []int, into interface{}) error {
	if !isSuccess(status, success) {
		return decodeDomainError(status, body)
	}

	if len(body) == 0 {
		return &TransportError{Kind: ShapeMismatch, Status: status, Err: ErrEmptyBody}
	}

	err := json.Unmarshal(body, into)
	if err != nil {
		return &TransportError{Kind: ShapeMismatch, Status: status, Err: err}
	}

	return nil
}

func decodeDomainError(status int, body []byte) error {
	if len(body) == 0 {
		return &TransportError{Kind: ShapeMismatch, Status: status, Err: ErrEmptyBody}
	}

	var envelope ErrorEnvelope[domainErrorBody]

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return &TransportError{Kind: ShapeMismatch, Status: status, Err: fmt.Errorf("parsing error body: %w", err)}
	}

	errorBody := envelope.Unwrap()

	err = validation.Struct(errorBody)
	if err != nil {
		return &TransportError{Kind: ShapeMismatch, Status: status, Err: fmt.Errorf("parsing error body: %w", err)}
	}

	return &DomainError{
		Status:  status,
		Message: errorBody.Message,
		Code:    *errorBody.Code,
		Data:    errorBody.Data,
	}
}

// domainErrorBody is the wire form of DomainError. Code is a pointer so that
// an absent key is told apart from code 0.
type domainErrorBody struct {
	Message string                 `json:"message"        validate:"required"`
	Code    *int                   `json:"code"           validate:"required"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

func checkPayload(status int, payload interface{}) error {
	err := validation.Struct(payload)
	if err != nil {
		return &TransportError{Kind: ShapeMismatch, Status: status, Err: err}
	}

	return nil
}

func isSuccess(status int, success []int) bool {
	if len(success) == 0 {
		return status == http.StatusOK
	}

	return slices.Contains(success, status)
}
