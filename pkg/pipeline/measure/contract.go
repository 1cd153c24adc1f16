package measure

import "time"

// Measure collects one metric per stage.
type Measure interface {
	// AddMetric registers the metric of a stage, it returns the existing one when already registered.
	AddMetric(name string) Metric
	// GetMetric returns the metric of a stage, nil when it is not registered.
	GetMetric(name string) Metric
	// AllMetrics returns the metrics by stage name.
	AllMetrics() map[string]Metric
	// Names returns the stage names in registration order.
	Names() []string
}

// Metric holds the durations of a stage.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	Count() int64
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
