package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query construction Prometheus metrics.
var (
	SchemaCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lingodex",
			Name:      "schema_cache_total",
			Help:      "Translated-field cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	QueriesBuiltTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lingodex",
			Name:      "queries_built_total",
			Help:      "Total query fragments built, by operation",
		},
		[]string{"operation"},
	)
)

var registered bool

// Register registers lingodex metrics with the default Prometheus
// registry. Must be called once from the host application.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(SchemaCacheTotal)
	prometheus.MustRegister(QueriesBuiltTotal)
	registered = true
}
