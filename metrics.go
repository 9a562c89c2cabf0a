package logfacade

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "logfacade"

// metrics counts what the façade does with each call. A nil *metrics is a
// valid no-op.
type metrics struct {
	emitted    *prometheus.CounterVec
	suppressed *prometheus.CounterVec
	failures   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer, loggers func() int) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	m := &metrics{
		emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "emitted_total",
			Help:      "Entries handed to the logging provider.",
		}, []string{"level"}),
		suppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "suppressed_total",
			Help:      "Calls dropped by a level gate before the message was built.",
		}, []string{"level"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "failures_total",
			Help:      "Calls that failed inside the façade and were reported on the fallback logger.",
		}),
	}
	size := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "loggers",
		Help:      "Named loggers created so far.",
	}, func() float64 { return float64(loggers()) })

	for _, c := range []prometheus.Collector{m.emitted, m.suppressed, m.failures, size} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) emit(level Level) {
	if m != nil {
		m.emitted.WithLabelValues(level.String()).Inc()
	}
}

func (m *metrics) suppress(level Level) {
	if m != nil {
		m.suppressed.WithLabelValues(level.String()).Inc()
	}
}

func (m *metrics) fail() {
	if m != nil {
		m.failures.Inc()
	}
}
