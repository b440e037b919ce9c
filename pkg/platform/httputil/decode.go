package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	dErrors "leadgen/pkg/domain-errors"
)

// DecodeJSON decodes a JSON request body into a new T. The body must hold
// exactly one JSON value and that value must not be null.
// Decode failures come back as CodeBadRequest domain errors wrapping the
// decoder error, so callers decide which response shape to write.
//
// Usage:
//
//	req, err := httputil.DecodeJSON[GenerateLeadsRequest](r)
//	if err != nil {
//	    ...
//	}
func DecodeJSON[T any](r *http.Request) (*T, error) {
	dec := json.NewDecoder(r.Body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, dErrors.Wrap(errTrailingData, dErrors.CodeBadRequest, "invalid request body")
	}
	if bytes.Equal(raw, []byte("null")) {
		return nil, dErrors.Wrap(errNullBody, dErrors.CodeBadRequest, "invalid request body")
	}

	var req T
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}
	return &req, nil
}

var (
	errTrailingData = errors.New("unexpected data after JSON value")
	errNullBody     = errors.New("request body is null")
)

// Validatable is implemented by request types that support validation.
type Validatable interface {
	Validate() error
}

// Normalizable is implemented by request types that support normalization.
type Normalizable interface {
	Normalize()
}

// PrepareRequest normalizes then validates a request when the type supports it.
func PrepareRequest(req any) error {
	if n, ok := req.(Normalizable); ok {
		n.Normalize()
	}
	if v, ok := req.(Validatable); ok {
		return v.Validate()
	}
	return nil
}

// DecodeAndPrepare combines DecodeJSON with PrepareRequest.
// Plain validation errors are wrapped as CodeValidation.
func DecodeAndPrepare[T any](r *http.Request) (*T, error) {
	req, err := DecodeJSON[T](r)
	if err != nil {
		return nil, err
	}
	if err := PrepareRequest(req); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
	}
	return req, nil
}
