package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	ProfileFetches   *prometheus.CounterVec
	ProfileCacheHits prometheus.Counter
	ProfileCacheMiss prometheus.Counter
	GuardDecisions   *prometheus.CounterVec
	RoleChangeEvents prometheus.Counter
	ClubsCreated     prometheus.Counter
	RequestLatencyMs *prometheus.HistogramVec
	SignIns          prometheus.Counter
	SignOuts         prometheus.Counter
	StaleFallbacks   prometheus.Counter
	DiscardedFetches prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		ProfileFetches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "clubhub_profile_fetches_total",
			Help: "Profile fetches against the document store by outcome",
		}, []string{"outcome"}),
		ProfileCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubhub_profile_cache_hits_total",
			Help: "Profile cache hits scoped to the current identity",
		}),
		ProfileCacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubhub_profile_cache_misses_total",
			Help: "Profile cache misses, including identity mismatches",
		}),
		GuardDecisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "clubhub_guard_decisions_total",
			Help: "Route guard decisions by variant",
		}, []string{"decision"}),
		RoleChangeEvents: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubhub_role_change_events_total",
			Help: "Role-change broadcasts received for the active identity",
		}),
		ClubsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubhub_clubs_created_total",
			Help: "Total number of clubs created",
		}),
		RequestLatencyMs: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clubhub_request_duration_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"path", "method"}),
		SignIns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubhub_sign_ins_total",
			Help: "Successful sign-ins",
		}),
		SignOuts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubhub_sign_outs_total",
			Help: "Sign-outs",
		}),
		StaleFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubhub_profile_stale_fallbacks_total",
			Help: "Fetch failures served from the stale cached profile",
		}),
		DiscardedFetches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clubhub_profile_fetches_discarded_total",
			Help: "Fetch results discarded because the identity changed in flight",
		}),
	}
}

// ObserveRequest records request latency per route pattern.
func (m *Metrics) ObserveRequest(path, method string, ms float64) {
	m.RequestLatencyMs.WithLabelValues(path, method).Observe(ms)
}
