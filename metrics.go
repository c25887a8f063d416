package exposureprobe

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "exposureprobe"

// WriteMetrics stores the outcome of a run as a node_exporter textfile.
func WriteMetrics(path string, out Outcome) error {
	reg := prometheus.NewRegistry()

	success := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "success",
		Help:      "Whether the last probe run succeeded (1) or failed (0).",
	})
	status := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "http_status_code",
		Help:      "HTTP status code of the last probe response, 0 when no response arrived.",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "duration_seconds",
		Help:      "Duration of the last probe request in seconds.",
	})
	items := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "analysis_items",
		Help:      "Number of analysis rows in the last successful response.",
	})

	reg.MustRegister(success, status, duration, items)

	if out.Success {
		success.Set(1)
	}

	status.Set(float64(out.StatusCode))
	duration.Set(out.Duration.Seconds())
	items.Set(float64(out.Items))

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}
