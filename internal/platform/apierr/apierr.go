package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for every failure kind the guide pipeline can surface.
const (
	CodeValidation          = "validation_error"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeMalformedUpstream   = "malformed_upstream_response"
	CodeUpstreamNotJSON     = "upstream_payload_not_json"
	CodeSchemaViolation     = "schema_violation"
	CodeArtifactIO          = "artifact_io_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Caller-fixable input problems.
func Validation(err error) *Error {
	return New(http.StatusBadRequest, CodeValidation, err)
}

// The generation service could not be reached or answered non-2xx.
func UpstreamUnavailable(err error) *Error {
	return New(http.StatusBadGateway, CodeUpstreamUnavailable, err)
}

// The response envelope did not contain a textual candidate.
func MalformedUpstream(err error) *Error {
	return New(http.StatusBadGateway, CodeMalformedUpstream, err)
}

// The extracted candidate text was not parseable JSON.
func UpstreamNotJSON(err error) *Error {
	return New(http.StatusBadGateway, CodeUpstreamNotJSON, err)
}

// The parsed payload did not satisfy the guidance schema.
func SchemaViolation(err error) *Error {
	return New(http.StatusBadGateway, CodeSchemaViolation, err)
}

func ArtifactIO(err error) *Error {
	return New(http.StatusInternalServerError, CodeArtifactIO, err)
}

// From extracts an *Error from an error chain, falling back to a generic 500.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return New(http.StatusInternalServerError, "internal_error", err)
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}
