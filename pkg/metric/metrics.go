package metric

import (
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type (
	Metrics interface {
		With(Labels) Metrics
		Increment(name string)
		Duration(name string, duration time.Duration)
	}

	Labels map[string]string

	// Registry collects metrics of a single client run and exports them in
	// the prometheus text format, e.g. for the node_exporter textfile collector.
	Registry struct {
		namespace string
		registry  *prometheus.Registry

		mu         sync.Mutex
		counters   map[string]*prometheus.CounterVec
		histograms map[string]*prometheus.HistogramVec
	}

	metrics struct {
		registry *Registry
		labels   Labels
	}
)

func NewRegistry(namespace string) *Registry {
	return &Registry{
		namespace:  namespace,
		registry:   prometheus.NewRegistry(),
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

func (r *Registry) Metrics() Metrics {
	return metrics{registry: r}
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Registry) WriteTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, r.registry)
	if err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}

	return nil
}

func (m metrics) With(labels Labels) Metrics {
	merged := make(Labels, len(m.labels)+len(labels))
	for k, v := range m.labels {
		merged[k] = v
	}
	for k, v := range labels {
		merged[k] = v
	}

	return metrics{registry: m.registry, labels: merged}
}

func (m metrics) Increment(name string) {
	counter, err := m.registry.counter(name, labelNames(m.labels))
	if err != nil {
		return
	}

	c, err := counter.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}
	c.Inc()
}

func (m metrics) Duration(name string, duration time.Duration) {
	histogram, err := m.registry.histogram(name, labelNames(m.labels))
	if err != nil {
		return
	}

	h, err := histogram.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}
	h.Observe(duration.Seconds())
}

func (r *Registry) counter(name string, labels []string) (*prometheus.CounterVec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if counter, ok := r.counters[name]; ok {
		return counter, nil
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      name,
		Help:      name,
	}, labels)
	if err := r.registry.Register(counter); err != nil {
		return nil, err
	}

	r.counters[name] = counter
	return counter, nil
}

func (r *Registry) histogram(name string, labels []string) (*prometheus.HistogramVec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if histogram, ok := r.histograms[name]; ok {
		return histogram, nil
	}

	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      name,
		Help:      name,
		Buckets:   prometheus.DefBuckets,
	}, labels)
	if err := r.registry.Register(histogram); err != nil {
		return nil, err
	}

	r.histograms[name] = histogram
	return histogram, nil
}

func labelNames(labels Labels) []string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	return slices.Clip(names)
}
