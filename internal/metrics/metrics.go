package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	registry *prometheus.Registry

	EncodeMessages  prometheus.Counter
	EncodeLetters   prometheus.Counter
	EncodeFailures  *prometheus.CounterVec
	EncodeDurations prometheus.Histogram
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		EncodeMessages: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "encode_messages_total",
			Help: "The total number of processed messages",
		}),
		EncodeLetters: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "encode_letters_total",
			Help: "The total number of enciphered letters",
		}),
		EncodeFailures: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "encode_failures_total",
			Help: "The total number of messages rejected due to invalid machine settings",
		}, []string{"reason"}),
		EncodeDurations: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name: "encode_duration_seconds",
			Help: "The time spent processing a single message",
		}),
	}

	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}
