package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"leadgen/internal/lead/models"
)

type Metrics struct {
	BatchesGenerated   prometheus.Counter
	BatchesFailed      prometheus.Counter
	LeadsGenerated     *prometheus.CounterVec
	LeadScore          prometheus.Histogram
	CountClamped       prometheus.Counter
	GenerationDuration prometheus.Histogram
	LeadsExported      prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BatchesGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadgen_batches_generated_total",
			Help: "Total number of successful lead generation requests",
		}),
		BatchesFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadgen_batches_failed_total",
			Help: "Total number of lead generation requests that failed",
		}),
		LeadsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgen_leads_generated_total",
			Help: "Total number of leads synthesized, labeled by score tier",
		}, []string{"tier"}),
		LeadScore: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadgen_lead_score",
			Help:    "Distribution of synthesized lead scores",
			Buckets: []float64{65, 70, 75, 80, 85, 90, 95, 100},
		}),
		CountClamped: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadgen_count_clamped_total",
			Help: "Requests whose lead count was clamped into the allowed range",
		}),
		GenerationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadgen_generation_duration_seconds",
			Help:    "Duration of a batch generation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		LeadsExported: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadgen_leads_exported_total",
			Help: "Total number of leads written to CSV exports",
		}),
	}
}

// ObserveBatch records a successful batch and every lead in it.
func (m *Metrics) ObserveBatch(leads []*models.Lead, start time.Time) {
	m.BatchesGenerated.Inc()
	m.GenerationDuration.Observe(time.Since(start).Seconds())
	for _, l := range leads {
		m.LeadsGenerated.WithLabelValues(l.Tier().String()).Inc()
		m.LeadScore.Observe(float64(l.Score))
	}
}

func (m *Metrics) IncrementBatchesFailed() {
	m.BatchesFailed.Inc()
}

func (m *Metrics) IncrementCountClamped() {
	m.CountClamped.Inc()
}

func (m *Metrics) AddLeadsExported(n int) {
	m.LeadsExported.Add(float64(n))
}
