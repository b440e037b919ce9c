package service

import (
	"log/slog"

	leadmetrics "leadgen/internal/lead/metrics"
	"leadgen/internal/lead/synth"
	"leadgen/internal/platform/tracer"
)

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *leadmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithSourceFactory controls how each Generate call obtains its random
// source. The factory must return a new, unshared Source on every call.
func WithSourceFactory(newSource func() synth.Source) Option {
	return func(s *Service) {
		s.newSource = newSource
	}
}
