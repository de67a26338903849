package measure

import "time"

// Measure collects one Metric per task.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric records the run durations of a single task.
type Metric interface {
	AddDuration(elapsed time.Duration)
	Runs() int64
	TotalDuration() time.Duration
	AVGDuration() time.Duration
}
