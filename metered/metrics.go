package metered

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const resultLabel = "result"

var (
	resultLabels = []string{resultLabel}
	hitLabels    = prometheus.Labels{
		resultLabel: "hit",
	}
	missLabels = prometheus.Labels{
		resultLabel: "miss",
	}
)

type metrics struct {
	getCount,
	getTime *prometheus.CounterVec

	setCount,
	setTime,
	evictions prometheus.Counter

	len,
	portionFilled prometheus.Gauge
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		getCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "get_count",
			Help:      "number of get calls",
		}, resultLabels),
		getTime: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "get_time",
			Help:      "time spent (ns) in get calls",
		}, resultLabels),
		setCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "set_count",
			Help:      "number of set calls",
		}),
		setTime: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "set_time",
			Help:      "time spent (ns) in set calls",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions",
			Help:      "number of entries evicted to admit new keys",
		}),
		len: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "len",
			Help:      "number of entries",
		}),
		portionFilled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "portion_filled",
			Help:      "fraction of cache filled",
		}),
	}
	return m, errors.Join(
		registerer.Register(m.getCount),
		registerer.Register(m.getTime),
		registerer.Register(m.setCount),
		registerer.Register(m.setTime),
		registerer.Register(m.evictions),
		registerer.Register(m.len),
		registerer.Register(m.portionFilled),
	)
}
