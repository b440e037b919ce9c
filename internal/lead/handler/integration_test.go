package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadgen/internal/lead/service"
	"leadgen/internal/lead/synth"
)

var emailPattern = regexp.MustCompile(`^[a-z]+\.[a-z]+@[a-z]+\.com$`)

func newLeadRouter(t *testing.T) http.Handler {
	t.Helper()
	s, err := synth.New(synth.DefaultPools())
	require.NoError(t, err)
	svc, err := service.New(s)
	require.NoError(t, err)

	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func generate(t *testing.T, router http.Handler, body string) (int, GenerateLeadsResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp GenerateLeadsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestGenerateLeads_Scenarios(t *testing.T) {
	router := newLeadRouter(t)

	t.Run("count 3", func(t *testing.T) {
		code, resp := generate(t, router, `{"count":3}`)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, resp.Success)
		assert.Len(t, resp.Leads, 3)
		assert.Equal(t, "Generated 3 qualified leads", resp.Message)
	})

	t.Run("count above cap", func(t *testing.T) {
		_, resp := generate(t, router, `{"count":50}`)
		assert.Len(t, resp.Leads, 20)
		assert.Equal(t, "Generated 20 qualified leads", resp.Message)
	})

	t.Run("whole number spellings", func(t *testing.T) {
		code, resp := generate(t, router, `{"count":3.0}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Len(t, resp.Leads, 3)

		_, resp = generate(t, router, `{"count":1e2}`)
		assert.Len(t, resp.Leads, 20)
	})

	t.Run("empty request uses defaults", func(t *testing.T) {
		_, resp := generate(t, router, `{}`)
		require.Len(t, resp.Leads, 5)
		for _, l := range resp.Leads {
			assert.Equal(t, "Technology", l.Industry)
		}
	})

	t.Run("zero count", func(t *testing.T) {
		code, resp := generate(t, router, `{"count":0}`)
		assert.Equal(t, http.StatusOK, code)
		assert.NotNil(t, resp.Leads)
		assert.Empty(t, resp.Leads)
	})

	t.Run("negative count", func(t *testing.T) {
		code, resp := generate(t, router, `{"count":-4}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Empty(t, resp.Leads)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/generate-leads", strings.NewReader("{count:"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Failed to generate leads"}`, rec.Body.String())
	})

	t.Run("industry and role hints", func(t *testing.T) {
		_, resp := generate(t, router, `{"industry":"Healthcare","role":"CTO","location":"Oslo","count":20}`)
		require.Len(t, resp.Leads, 20)
		for _, l := range resp.Leads {
			assert.Equal(t, "Healthcare", l.Industry)
			assert.Contains(t, l.Insights, "CTO has decision-making authority in procurement")
			if l.Score >= 80 {
				assert.Contains(t, l.Insights, "Company is expanding their healthcare operations")
			}
		}
	})
}

func TestGenerateLeads_RecordProperties(t *testing.T) {
	router := newLeadRouter(t)

	for range 10 {
		_, resp := generate(t, router, `{"count":20}`)
		require.Len(t, resp.Leads, 20)

		for i, l := range resp.Leads {
			assert.GreaterOrEqual(t, l.Score, 60)
			assert.LessOrEqual(t, l.Score, 100)
			assert.LessOrEqual(t, len(l.Insights), 4)
			assert.Len(t, uniq(l.Insights), len(l.Insights), "duplicate insight in %v", l.Insights)
			assert.Regexp(t, emailPattern, l.Email)
			assert.NotEmpty(t, l.ID)
			if i > 0 {
				assert.GreaterOrEqual(t, resp.Leads[i-1].Score, l.Score, "leads must be sorted by score")
			}
		}
	}
}

func TestExportLeads_RoundTripsGenerateResponse(t *testing.T) {
	router := newLeadRouter(t)
	_, generated := generate(t, router, `{"count":4}`)

	body, err := json.Marshal(ExportLeadsRequest{Leads: generated.Leads})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/leads/export", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	lines := strings.Split(strings.TrimSuffix(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Name,Email,Company,Industry,Score,Insights,Timestamp", lines[0])
	for i, l := range generated.Leads {
		assert.True(t, strings.HasPrefix(lines[i+1], l.Name+","+l.Email+","), lines[i+1])
		assert.True(t, strings.HasSuffix(lines[i+1], ","+l.Timestamp), lines[i+1])
	}
}

func uniq(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}
