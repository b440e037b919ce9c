package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "leadgen/pkg/domain-errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name  string `json:"name"`
	Count *int   `json:"count"`
}

type preparedRequest struct {
	Name       string `json:"name"`
	normalized bool
}

func (r *preparedRequest) Normalize() {
	r.normalized = true
	r.Name = strings.TrimSpace(r.Name)
}

func (r *preparedRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type domainValidatedRequest struct {
	ID string `json:"id"`
}

func (r *domainValidatedRequest) Validate() error {
	if r.ID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "id is required")
	}
	return nil
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
}

func TestDecodeJSON(t *testing.T) {
	t.Run("successful decode", func(t *testing.T) {
		result, err := DecodeJSON[testRequest](newRequest(`{"name":"acme","count":3}`))

		require.NoError(t, err)
		require.NotNil(t, result.Count)
		assert.Equal(t, "acme", result.Name)
		assert.Equal(t, 3, *result.Count)
	})

	t.Run("absent field stays nil", func(t *testing.T) {
		result, err := DecodeJSON[testRequest](newRequest(`{}`))

		require.NoError(t, err)
		assert.Nil(t, result.Count)
	})

	t.Run("invalid JSON is a bad request", func(t *testing.T) {
		result, err := DecodeJSON[testRequest](newRequest(`{invalid json}`))

		assert.Nil(t, result)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("wrong field type is a bad request", func(t *testing.T) {
		_, err := DecodeJSON[testRequest](newRequest(`{"count":"three"}`))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("empty body is a bad request", func(t *testing.T) {
		_, err := DecodeJSON[testRequest](newRequest(""))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("trailing data is a bad request", func(t *testing.T) {
		for _, body := range []string{`{"count":3} trailing`, `{"count":3}{"count":9}`, `{"count":3} 1`} {
			result, err := DecodeJSON[testRequest](newRequest(body))

			assert.Nil(t, result, body)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest), body)
		}
	})

	t.Run("trailing whitespace is allowed", func(t *testing.T) {
		result, err := DecodeJSON[testRequest](newRequest("{\"name\":\"acme\"}\n  "))

		require.NoError(t, err)
		assert.Equal(t, "acme", result.Name)
	})

	t.Run("null body is a bad request", func(t *testing.T) {
		result, err := DecodeJSON[testRequest](newRequest(" null "))

		assert.Nil(t, result)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("normalizes before validating", func(t *testing.T) {
		result, err := DecodeAndPrepare[preparedRequest](newRequest(`{"name":"  acme  "}`))

		require.NoError(t, err)
		assert.True(t, result.normalized)
		assert.Equal(t, "acme", result.Name)
	})

	t.Run("plain validation error becomes validation code", func(t *testing.T) {
		_, err := DecodeAndPrepare[preparedRequest](newRequest(`{"name":"   "}`))

		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("domain validation error keeps its code", func(t *testing.T) {
		_, err := DecodeAndPrepare[domainValidatedRequest](newRequest(`{"id":""}`))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"bad request", dErrors.New(dErrors.CodeBadRequest, "invalid request body"), http.StatusBadRequest, "bad_request"},
		{"validation", dErrors.New(dErrors.CodeValidation, "too many leads"), http.StatusBadRequest, "validation_error"},
		{"timeout", dErrors.New(dErrors.CodeTimeout, "slow"), http.StatusGatewayTimeout, "timeout"},
		{"internal", dErrors.New(dErrors.CodeInternal, "boom"), http.StatusInternalServerError, "internal_error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["error"])
		})
	}

	t.Run("plain error hides its message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("secret detail"))
		assert.NotContains(t, w.Body.String(), "secret detail")
	})
}
