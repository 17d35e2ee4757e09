// Package Metrics exports tree diagnostics to Prometheus.
package Metrics

import (
	"github.com/g-m-twostay/go-threadedtree/Trees"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// RemoveCounter counts successful removals by structural case. Pass Observe
// to Trees.WithObserver.
type RemoveCounter struct {
	vec *prometheus.CounterVec
}

// NewRemoveCounter creates the counter threadedtree_removals_total{case} in
// namespace ns and registers it with reg. Every case starts at 0.
func NewRemoveCounter(ns string, reg prometheus.Registerer) (*RemoveCounter, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Subsystem: "threadedtree",
		Name:      "removals_total",
		Help:      "Successful removals from threaded trees by structural case.",
	}, []string{"case"})
	if err := reg.Register(vec); err != nil {
		return nil, err
	}
	for _, c := range Trees.RemoveCases() {
		vec.WithLabelValues(c.String())
	}
	return &RemoveCounter{vec}, nil
}

// Observe one removal.
func (u *RemoveCounter) Observe(c Trees.RemoveCase) {
	u.vec.WithLabelValues(c.String()).Inc()
}

// Counter for case c.
func (u *RemoveCounter) Counter(c Trees.RemoveCase) prometheus.Counter {
	return u.vec.WithLabelValues(c.String())
}

// Value of the counter for case c.
func (u *RemoveCounter) Value(c Trees.RemoveCase) uint64 {
	var m dto.Metric
	if err := u.Counter(c).Write(&m); err != nil {
		return 0
	}
	return uint64(m.GetCounter().GetValue())
}
