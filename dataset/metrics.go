package dataset

import (
	"github.com/prometheus/client_golang/prometheus"
)

type runMetrics struct {
	registry      *prometheus.Registry
	blocksEncoded prometheus.Counter
	blockBytes    prometheus.Counter
	runs          *prometheus.CounterVec
}

func newRunMetrics() *runMetrics {
	m := &runMetrics{
		registry: prometheus.NewRegistry(),
		blocksEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bin2dataset",
			Name:      "blocks_encoded_total",
			Help:      "Data blocks encoded into dataset fragments",
		}),
		blockBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bin2dataset",
			Name:      "block_bytes_total",
			Help:      "Bytes of block data encoded, checksum trailers included",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bin2dataset",
			Name:      "runs_total",
			Help:      "Dataset builds by result",
		}, []string{"result"}),
	}
	m.registry.MustRegister(m.blocksEncoded, m.blockBytes, m.runs)

	return m
}

func (m *runMetrics) observeBlock(size int) {
	m.blocksEncoded.Inc()
	m.blockBytes.Add(float64(size))
}

func (m *runMetrics) observeRun(err error) {
	result := "success"
	if e, ok := err.(*Error); ok {
		result = e.Kind.String()
	} else if err != nil {
		result = "error"
	}
	m.runs.WithLabelValues(result).Inc()
}

func (m *runMetrics) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
