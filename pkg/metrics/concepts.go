package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ConceptMetrics records design concept generation outcomes.
type ConceptMetrics struct {
	duration  *prometheus.HistogramVec
	generated *prometheus.CounterVec
	fallback  *prometheus.CounterVec
}

// NewConceptMetrics registers the concept metrics on the provided registerer.
func NewConceptMetrics(reg prometheus.Registerer) *ConceptMetrics {
	if reg == nil {
		return &ConceptMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "invite_concept_generation_seconds",
		Help:    "Duration of a full concept generation request.",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"provider"})
	generated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "invite_concepts_generated_total",
		Help: "Concepts returned with generated imagery.",
	}, []string{"provider"})
	fallback := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "invite_concepts_placeholder_total",
		Help: "Concepts that fell back to placeholder imagery.",
	}, []string{"stage"})
	reg.MustRegister(duration, generated, fallback)
	return &ConceptMetrics{
		duration:  duration,
		generated: generated,
		fallback:  fallback,
	}
}

// ObserveDuration records how long a generation request took.
func (c *ConceptMetrics) ObserveDuration(provider string, d time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(provider)).Observe(d.Seconds())
}

// IncGenerated counts a concept whose images all came from the provider.
func (c *ConceptMetrics) IncGenerated(provider string) {
	if c == nil || c.generated == nil {
		return
	}
	c.generated.WithLabelValues(normalizeLabel(provider)).Inc()
}

// IncPlaceholder counts a concept that used placeholder imagery at stage.
func (c *ConceptMetrics) IncPlaceholder(stage string) {
	if c == nil || c.fallback == nil {
		return
	}
	c.fallback.WithLabelValues(normalizeLabel(stage)).Inc()
}
