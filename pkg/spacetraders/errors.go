package spacetraders

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DomainError is an application-level failure reported by the game server:
// the request was understood but the action was rejected.
type DomainError struct {
	// Status is the HTTP status code of the response that carried the error.
	Status int `json:"-" yaml:"status"`

	Message string                 `json:"message"        yaml:"message"`
	Code    int                    `json:"code"           yaml:"code"`
	Data    map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s (code: %d, status: %d)", e.Message, e.Code, e.Status)
}

// MarshalJSON encodes the error in the server's {"error": {...}} shape.
func (e *DomainError) MarshalJSON() ([]byte, error) {
	type plain DomainError

	data, err := json.Marshal(struct {
		Error *plain `json:"error"`
	}{Error: (*plain)(e)})
	if err != nil {
		return nil, fmt.Errorf("encoding domain error: %w", err)
	}

	return data, nil
}

// TransportErrorKind classifies a TransportError.
type TransportErrorKind int

const (
	// Request means the request could not be sent or the response not received.
	Request TransportErrorKind = iota + 1
	// ShapeMismatch means the response body did not match the expected shape.
	ShapeMismatch
)

// String returns the kind name.
func (k TransportErrorKind) String() string {
	switch k {
	case Request:
		return "request"
	case ShapeMismatch:
		return "shape mismatch"
	default:
		return "unknown"
	}
}

// TransportError is a failure below the application layer. It is never
// retried by this package.
type TransportError struct {
	Kind TransportErrorKind
	// Status is the HTTP status of the offending response, or 0 when no
	// response was received.
	Status int
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status: %d): %v", e.Kind, e.Status, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports an operation invoked with an unusable client
// configuration or invalid input. No request is sent.
type ConfigurationError struct {
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Static errors for err113 compliance.
var (
	ErrNotAuthenticated   = errors.New("operation requires an access token")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrConfigRequired     = errors.New("config is required")
	ErrMissingEnvelopeKey = errors.New("missing envelope key")
	ErrEmptyBody          = errors.New("empty response body")
)

// Known server error codes.
const (
	ErrorCodeCooldownConflict         = 4000
	ErrorCodeWaypointNoAccess         = 4001
	ErrorCodeTokenEmpty               = 4100
	ErrorCodeAgentNotExists           = 4107
	ErrorCodeRegisterAgentExists      = 4109
	ErrorCodeNavigateInTransit        = 4200
	ErrorCodeNavigateInsufficientFuel = 4203
	ErrorCodeShipInTransit            = 4214
	ErrorCodeShipNotInOrbit           = 4236
)

// AsDomainError returns the DomainError in err's chain, if any.
func AsDomainError(err error) (*DomainError, bool) {
	domainErr := &DomainError{}
	if errors.As(err, &domainErr) {
		return domainErr, true
	}

	return nil, false
}

// IsErrorCode checks if err carries the given server error code.
func IsErrorCode(err error, code int) bool {
	domainErr, ok := AsDomainError(err)

	return ok && domainErr.Code == code
}

// IsNotFound checks if the server answered 404.
func IsNotFound(err error) bool {
	domainErr, ok := AsDomainError(err)

	return ok && domainErr.Status == http.StatusNotFound
}

// IsUnauthorized checks if the server rejected the credentials.
func IsUnauthorized(err error) bool {
	domainErr, ok := AsDomainError(err)

	return ok && domainErr.Status == http.StatusUnauthorized
}

// IsCooldown checks if the action was rejected because the ship is cooling down.
func IsCooldown(err error) bool {
	return IsErrorCode(err, ErrorCodeCooldownConflict)
}

// IsShapeMismatch checks if err is a TransportError caused by an unexpected body.
func IsShapeMismatch(err error) bool {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.Kind == ShapeMismatch
	}

	return false
}

// IsNotAuthenticated checks if err reports a missing access token.
func IsNotAuthenticated(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}
