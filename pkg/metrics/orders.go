package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records order submissions and their value.
type OrderMetrics struct {
	submitted *prometheus.CounterVec
	blocked   *prometheus.CounterVec
	value     *prometheus.HistogramVec
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	submitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "invite_orders_submitted_total",
		Help: "Orders accepted by a submission sink.",
	}, []string{"sink"})
	blocked := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "invite_orders_blocked_total",
		Help: "Submissions rejected by the readiness gate.",
	}, []string{"reason"})
	value := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "invite_order_total_krw",
		Help:    "Total cost of accepted orders in won.",
		Buckets: []float64{25000, 50000, 100000, 150000, 200000, 300000, 500000},
	}, []string{"sink"})
	reg.MustRegister(submitted, blocked, value)
	return &OrderMetrics{
		submitted: submitted,
		blocked:   blocked,
		value:     value,
	}
}

// IncSubmitted counts an accepted order and observes its total.
func (m *OrderMetrics) IncSubmitted(sink string, total int64) {
	if m == nil || m.submitted == nil {
		return
	}
	label := normalizeLabel(sink)
	m.submitted.WithLabelValues(label).Inc()
	m.value.WithLabelValues(label).Observe(float64(total))
}

// IncBlocked counts a gate rejection per failing reason.
func (m *OrderMetrics) IncBlocked(reasons ...string) {
	if m == nil || m.blocked == nil {
		return
	}
	for _, r := range reasons {
		m.blocked.WithLabelValues(normalizeLabel(r)).Inc()
	}
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
