package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the service registry with the runtime collectors
// and a service_info gauge carrying the running version.
func SetupPrometheus(namespace, versionInfo string) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "service_info",
			Help:        "Always 1, labeled with the running service version",
			ConstLabels: prometheus.Labels{"version": versionInfo},
		}, func() float64 { return 1 }),
	)

	return promRegistry
}
