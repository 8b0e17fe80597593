package healthendpoint

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type CounterCollector interface {
	prometheus.Collector
	AddCounters(counterOpts ...prometheus.CounterOpts)
	Add(counterOpts prometheus.CounterOpts, count int64)
}

func NewCounterCollector() CounterCollector {
	return &counterCollector{
		counterMap: map[string]prometheus.Counter{},
	}
}

type counterCollector struct {
	counterMap map[string]prometheus.Counter
	sync.RWMutex
}

func (c *counterCollector) AddCounters(counterOpts ...prometheus.CounterOpts) {
	c.Lock()
	defer c.Unlock()
	for _, opts := range counterOpts {
		name := counterFullName(opts)
		if _, exists := c.counterMap[name]; exists {
			continue
		}
		c.counterMap[name] = prometheus.NewCounter(opts)
	}
}

func (c *counterCollector) Describe(ch chan<- *prometheus.Desc) {
	c.RLock()
	defer c.RUnlock()
	for _, counter := range c.counterMap {
		ch <- counter.Desc()
	}
}

func (c *counterCollector) Collect(ch chan<- prometheus.Metric) {
	c.RLock()
	defer c.RUnlock()
	for _, counter := range c.counterMap {
		ch <- counter
	}
}

func (c *counterCollector) Add(counterOpts prometheus.CounterOpts, count int64) {
	c.RLock()
	defer c.RUnlock()
	if counter, exists := c.counterMap[counterFullName(counterOpts)]; exists {
		counter.Add(float64(count))
	}
}

func counterFullName(opts prometheus.CounterOpts) string {
	return opts.Namespace + "_" + opts.Subsystem + "_" + opts.Name
}
