// Package measure provides run-duration metrics for pipeline tasks.
package measure

import "sync"

type DefaultMeasure struct {
	Tasks map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Tasks: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	mt := &DefaultMetric{
		mu: &sync.Mutex{},
	}
	m.Tasks[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	return m.Tasks[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	return m.Tasks
}

var _ Measure = (*DefaultMeasure)(nil)
