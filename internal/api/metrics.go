package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics provides Prometheus metrics for API calls. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	requestsTotal        *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	throttleRetriesTotal prometheus.Counter
}

// NewMetrics creates the collectors on reg. Collectors that are already
// registered on reg are reused, so several clients can share a registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requestsTotal, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "harvest_requests_total",
			Help: "Total number of HTTP attempts made against the Harvest API",
		},
		[]string{"method", "status_code"},
	))
	if err != nil {
		return nil, err
	}

	requestDuration, err := register(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "harvest_request_duration_seconds",
			Help:    "Duration of HTTP attempts against the Harvest API in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}

	throttleRetriesTotal, err := register(reg, prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "harvest_throttle_retries_total",
			Help: "Total number of retries caused by 503 throttling responses",
		},
	))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestsTotal:        requestsTotal,
		requestDuration:      requestDuration,
		throttleRetriesTotal: throttleRetriesTotal,
	}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// statusLabel is "network_error" for attempts that got no response.
func statusLabel(status int) string {
	if status == 0 {
		return "network_error"
	}
	return strconv.Itoa(status)
}

func (m *Metrics) observeRequest(method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, statusLabel(status)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) observeThrottle() {
	if m == nil {
		return
	}
	m.throttleRetriesTotal.Inc()
}
