package vizr

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments render cycles. Registration is optional; a nil
// *Metrics is a no-op so library users pay nothing by default.
type Metrics struct {
	renders  *prometheus.CounterVec
	duration prometheus.Histogram
	marks    prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vizr",
			Name:      "render_cycles_total",
			Help:      "Completed render cycles by chart type.",
		}, []string{"chart_type"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vizr",
			Name:      "render_duration_seconds",
			Help:      "Wall time of one full clear-and-redraw cycle.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		marks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vizr",
			Name:      "marks_drawn",
			Help:      "Marks emitted by the most recent render.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.renders, m.duration, m.marks)
	}
	return m
}

func (m *Metrics) observe(chartType ChartType, seconds float64, marks int) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(string(chartType)).Inc()
	m.duration.Observe(seconds)
	m.marks.Set(float64(marks))
}
