package ado

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents the error body returned by the platform.
type APIError struct {
	ID        string `json:"$id,omitempty"      yaml:"id,omitempty"`
	Message   string `json:"message"            yaml:"message"`
	TypeName  string `json:"typeName,omitempty" yaml:"type_name,omitempty"`
	TypeKey   string `json:"typeKey,omitempty"  yaml:"type_key,omitempty"`
	ErrorCode int    `json:"errorCode"          yaml:"error_code"`
	EventID   int    `json:"eventId"            yaml:"event_id"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.TypeKey == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.TypeKey, e.Message)
}

// HTTPError is returned when the transport fails and no response was obtained.
type HTTPError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response was obtained but signals failure,
// or its body cannot be parsed as an envelope.
type DecodeError struct {
	Response *Response
	// APIError is set when the failure body matches the platform error shape.
	APIError *APIError
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	status := 0
	target := ""

	if e.Response != nil {
		status = e.Response.StatusCode
		target = e.Response.Method + " " + e.Response.URL
	}

	switch {
	case e.APIError != nil:
		return fmt.Sprintf("%s (status %d): %v", target, status, e.APIError)
	case e.Err != nil:
		return fmt.Sprintf("%s (status %d): %v", target, status, e.Err)
	default:
		return fmt.Sprintf("%s (status %d)", target, status)
	}
}

// Unwrap returns the cause of the failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status of the offending response.
func (e *DecodeError) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrTenantRequired       = errors.New("tenant is required")
	ErrProjectIDRequired    = errors.New("project ID is required")
	ErrRepositoryIDRequired = errors.New("repository ID is required")
	ErrCredentialsRequired  = errors.New("credentials are required")
	ErrUnexpectedStatus     = errors.New("unexpected status code")
	ErrNilResponse          = errors.New("no response to decode")
	ErrInvalidBody          = errors.New("response body is not valid JSON")
	ErrPayloadNotList       = errors.New("payload is not a list")
	ErrAccessDenied         = errors.New("unable to access the API with the configured credentials")
)

// IsHTTPError checks if the error is a transport failure.
func IsHTTPError(err error) bool {
	httpErr := &HTTPError{}

	return errors.As(err, &httpErr)
}

// IsDecodeError checks if the error is an API-level failure.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func hasStatus(err error, status int) bool {
	decodeErr := &DecodeError{}
	if errors.As(err, &decodeErr) {
		return decodeErr.StatusCode() == status
	}

	return false
}

// ParseAPIError parses an error body from JSON. It returns nil when the body
// does not carry a platform error message.
func ParseAPIError(data []byte) *APIError {
	var apiErr APIError

	err := json.Unmarshal(data, &apiErr)
	if err != nil || apiErr.Message == "" {
		return nil
	}

	return &apiErr
}
