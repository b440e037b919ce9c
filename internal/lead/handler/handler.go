package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"leadgen/internal/lead/export"
	leadmetrics "leadgen/internal/lead/metrics"
	"leadgen/internal/lead/models"
	"leadgen/internal/lead/service"
	dErrors "leadgen/pkg/domain-errors"
	"leadgen/pkg/platform/httputil"
	request "leadgen/pkg/platform/middleware/request"
	"leadgen/pkg/platform/middleware/requesttime"
)

// Service defines the lead generation operation the handler needs.
type Service interface {
	Generate(ctx context.Context, cmd *service.GenerateCommand) ([]*models.Lead, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *leadmetrics.Metrics
}

type Option func(h *Handler)

func WithMetrics(m *leadmetrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{service: service, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/generate-leads", h.HandleGenerateLeads)
	r.Post("/api/leads/export", h.HandleExportLeads)
}

// HandleGenerateLeads synthesizes a batch of leads. Every failure, whether a
// malformed body or a fault during generation, is reported with the same
// 500 failure payload.
func (h *Handler) HandleGenerateLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.ErrorContext(ctx, "generate leads panicked", "panic", rec, "request_id", requestID)
			h.writeFailure(w)
		}
	}()

	req, err := httputil.DecodeAndPrepare[GenerateLeadsRequest](r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid generate leads request", "error", err, "request_id", requestID)
		h.writeFailure(w)
		return
	}

	leads, err := h.service.Generate(ctx, req.ToCommand())
	if err != nil {
		h.logger.ErrorContext(ctx, "generate leads failed", "error", err, "request_id", requestID)
		h.writeFailure(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ToGenerateLeadsResponse(leads))
}

// HandleExportLeads renders previously generated leads as a CSV download.
func (h *Handler) HandleExportLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, err := httputil.DecodeAndPrepare[ExportLeadsRequest](r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid export request", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	leads := req.ToModels()
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, leads); err != nil {
		h.logger.ErrorContext(ctx, "export leads failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "export failed"))
		return
	}
	if h.metrics != nil {
		h.metrics.AddLeadsExported(len(leads))
	}

	filename := export.Filename(requesttime.Now(ctx))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) writeFailure(w http.ResponseWriter) {
	httputil.WriteJSON(w, http.StatusInternalServerError, newFailureResponse())
}
