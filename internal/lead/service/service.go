package service

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	leadmetrics "leadgen/internal/lead/metrics"
	"leadgen/internal/lead/models"
	"leadgen/internal/lead/synth"
	"leadgen/internal/platform/tracer"
	dErrors "leadgen/pkg/domain-errors"
	request "leadgen/pkg/platform/middleware/request"
	"leadgen/pkg/platform/middleware/requesttime"
)

// Synthesizer fabricates a single lead from an explicit random source.
type Synthesizer interface {
	Synthesize(src synth.Source, hints synth.Hints, now time.Time) *models.Lead
}

// Service generates batches of leads. It keeps no per-request state: every
// Generate call gets its own random source, so concurrent calls never share
// a generator.
type Service struct {
	synth     Synthesizer
	newSource func() synth.Source
	logger    *slog.Logger
	metrics   *leadmetrics.Metrics
	tracer    tracer.Tracer
}

func New(s Synthesizer, opts ...Option) (*Service, error) {
	if s == nil {
		return nil, fmt.Errorf("synthesizer is required")
	}
	svc := &Service{synth: s}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.newSource == nil {
		svc.newSource = synth.NewSource
	}
	if svc.logger == nil {
		svc.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if svc.tracer == nil {
		svc.tracer = tracer.NewNoop()
	}
	return svc, nil
}

// Generate synthesizes a batch sorted by score, highest first. The batch
// either succeeds completely or fails with no partial results.
func (s *Service) Generate(ctx context.Context, cmd *GenerateCommand) (leads []*models.Lead, err error) {
	if cmd == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "generate command is required")
	}

	n, clamped := cmd.EffectiveCount()
	ctx, span := s.tracer.Start(ctx, tracer.SpanLeadGenerate,
		tracer.Int(tracer.AttrLeadCount, n),
		tracer.Bool(tracer.AttrIndustrySet, cmd.hasIndustry()),
		tracer.Bool(tracer.AttrRoleSet, cmd.hasRole()),
		tracer.Bool(tracer.AttrLocationSet, cmd.hasLocation()),
	)
	start := time.Now()
	defer func() {
		span.SetAttributes(tracer.Duration(tracer.AttrGenerationMs, time.Since(start)))
		if err != nil && s.metrics != nil {
			s.metrics.IncrementBatchesFailed()
		}
		span.End(err)
	}()

	if clamped {
		span.AddEvent(tracer.EventCountClamped, tracer.Int(tracer.AttrLeadRequested, *cmd.Count))
		if s.metrics != nil {
			s.metrics.IncrementCountClamped()
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "generation cancelled")
	}

	leads, err = s.synthesizeBatch(ctx, cmd, n)
	if err != nil {
		s.logger.ErrorContext(ctx, "lead synthesis failed",
			"error", err,
			"count", n,
			"request_id", request.GetRequestID(ctx),
		)
		return nil, err
	}

	slices.SortStableFunc(leads, func(a, b *models.Lead) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(leads) > 0 {
		span.SetAttributes(tracer.Int(tracer.AttrTopScore, leads[0].Score))
	}
	if s.metrics != nil {
		s.metrics.ObserveBatch(leads, start)
	}
	s.logger.DebugContext(ctx, "leads generated",
		"count", len(leads),
		"clamped", clamped,
		"location_ignored", cmd.hasLocation(),
		"request_id", request.GetRequestID(ctx),
	)
	return leads, nil
}

// synthesizeBatch converts a synthesis panic into an internal error so a
// single bad pool entry cannot take the request down unreported.
func (s *Service) synthesizeBatch(ctx context.Context, cmd *GenerateCommand, n int) (leads []*models.Lead, err error) {
	defer func() {
		if r := recover(); r != nil {
			leads = nil
			err = dErrors.Wrap(fmt.Errorf("panic: %v", r), dErrors.CodeInternal, "lead synthesis failed")
		}
	}()

	src := s.newSource()
	now := requesttime.Now(ctx)
	hints := synth.Hints{Industry: cmd.Industry, Role: cmd.Role}

	leads = make([]*models.Lead, 0, n)
	for range n {
		if err := ctx.Err(); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "generation cancelled")
		}
		lead := s.synth.Synthesize(src, hints, now)
		if err := lead.Validate(); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "synthesized lead is invalid")
		}
		leads = append(leads, lead)
	}
	return leads, nil
}
