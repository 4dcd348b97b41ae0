package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives render and publish observations. Publish outcomes are
// labelled "success" or a failure kind.
type Recorder interface {
	ObserveRender(d time.Duration, cards int)
	ObservePublish(outcome string, d time.Duration)
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) ObserveRender(time.Duration, int)     {}
func (NoopRecorder) ObservePublish(string, time.Duration) {}

// PrometheusRecorder exports render and publish metrics.
type PrometheusRecorder struct {
	renderDuration  prometheus.Histogram
	renderCards     prometheus.Histogram
	publishTotal    *prometheus.CounterVec
	publishDuration *prometheus.HistogramVec
}

// NewPrometheusRecorder registers its collectors on reg; a nil reg uses the
// default registerer.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &PrometheusRecorder{
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "promo_render_duration_seconds",
			Help:    "Document render latency seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05},
		}),
		renderCards: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "promo_render_cards",
			Help:    "Campaign cards per rendered document",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
		}),
		publishTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promo_publish_total",
			Help: "WordPress publish attempts by outcome",
		}, []string{"outcome"}),
		publishDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "promo_publish_duration_seconds",
			Help:    "WordPress publish latency seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	reg.MustRegister(r.renderDuration, r.renderCards, r.publishTotal, r.publishDuration)
	return r
}

func (r *PrometheusRecorder) ObserveRender(d time.Duration, cards int) {
	r.renderDuration.Observe(d.Seconds())
	r.renderCards.Observe(float64(cards))
}

func (r *PrometheusRecorder) ObservePublish(outcome string, d time.Duration) {
	r.publishTotal.WithLabelValues(outcome).Inc()
	r.publishDuration.WithLabelValues(outcome).Observe(d.Seconds())
}
