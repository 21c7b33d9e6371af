package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for offer issuance, settlement and candidate ranking.
// All methods are nil-safe so components can run without instrumentation.
type Metrics struct {
	Registry *prometheus.Registry

	OffersCreated         prometheus.Counter
	OffersSettled         *prometheus.CounterVec
	OfferRejections       *prometheus.CounterVec
	ConsistencyViolations prometheus.Counter
	RankDuration          prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		OffersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "daycare_offers_created_total",
			Help: "Total offers issued in pending state",
		}),
		OffersSettled: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "daycare_offers_settled_total",
			Help: "Total offers settled by decision",
		}, []string{"decision"}), // decision: "accept", "decline"
		OfferRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "daycare_offer_rejections_total",
			Help: "Offer operations refused by reason",
		}, []string{"reason"}),
		ConsistencyViolations: factory.NewCounter(prometheus.CounterOpts{
			Name: "daycare_consistency_violations_total",
			Help: "Settlements aborted because capacity would go negative",
		}),
		RankDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "daycare_rank_duration_seconds",
			Help:    "Duration of candidate ranking including the snapshot read",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncOfferCreated() {
	if m != nil {
		m.OffersCreated.Inc()
	}
}

func (m *Metrics) IncOfferSettled(decision string) {
	if m != nil {
		m.OffersSettled.WithLabelValues(decision).Inc()
	}
}

func (m *Metrics) IncOfferRejected(reason string) {
	if m != nil {
		m.OfferRejections.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) IncConsistencyViolation() {
	if m != nil {
		m.ConsistencyViolations.Inc()
	}
}

func (m *Metrics) ObserveRank(d time.Duration) {
	if m != nil {
		m.RankDuration.Observe(d.Seconds())
	}
}
