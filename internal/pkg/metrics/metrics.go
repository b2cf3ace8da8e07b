package metrics

import (
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "points_rewards"

// Metrics owns every collector the service exports. It is registered on the
// given registerer so tests can use a private registry.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	redemptionsCreated  prometheus.Counter
	pointsRedeemed      prometheus.Counter
	statusChanges       *prometheus.CounterVec
	pointsRefunded      prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		httpRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		redemptionsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemptions_created_total",
			Help:      "Redemptions committed",
		}),
		pointsRedeemed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_redeemed_total",
			Help:      "Points debited by redemptions",
		}),
		statusChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemption_status_changes_total",
			Help:      "Redemption state transitions",
		}, []string{"from", "to"}),
		pointsRefunded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_refunded_total",
			Help:      "Points credited back by cancellations",
		}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RedemptionCreated keeps the benefit out of the labels to bound cardinality.
func (m *Metrics) RedemptionCreated(_ uuid.UUID, points int64) {
	m.redemptionsCreated.Inc()
	m.pointsRedeemed.Add(float64(points))
}

func (m *Metrics) StatusChanged(from, to string) {
	m.statusChanges.WithLabelValues(from, to).Inc()
}

func (m *Metrics) PointsRefunded(points int64) {
	m.pointsRefunded.Add(float64(points))
}
