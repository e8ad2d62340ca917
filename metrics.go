package qecc

import (
	"sort"
	"sync"
	"time"
)

type Metrics struct {
	mu                 sync.RWMutex
	WorkerCount        int
	TrialCount         int64
	Outcomes           map[Outcome]int64
	Failures           int64 // trials aborted with an error
	SchedulingFailures int64
	TotalTrialTime     time.Duration

	AverageLatency time.Duration
	P95Latency     time.Duration
	P99Latency     time.Duration
	SuccessRate    float64

	latencyWindow []time.Duration
	windowSize    int
}

func NewMetrics() *Metrics {
	return &Metrics{
		Outcomes:      make(map[Outcome]int64),
		latencyWindow: make([]time.Duration, 0, 1000), // Store last 1000 measurements
		windowSize:    1000,
	}
}

func (m *Metrics) recordTrial(result TrialResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TrialCount++
	m.TotalTrialTime += result.Duration

	if result.Err != nil {
		m.Failures++
	} else {
		m.Outcomes[result.Result.Outcome()]++
	}

	successes := m.Outcomes[OutcomeClean] + m.Outcomes[OutcomeCorrected]
	m.SuccessRate = float64(successes) / float64(m.TrialCount)

	m.updateLatencyPercentiles(result.Duration)
}

func (m *Metrics) recordSchedulingFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SchedulingFailures++
}

func (m *Metrics) updateLatencyPercentiles(duration time.Duration) {
	m.AverageLatency = m.TotalTrialTime / time.Duration(m.TrialCount)

	m.latencyWindow = append(m.latencyWindow, duration)
	if len(m.latencyWindow) > m.windowSize {
		m.latencyWindow = m.latencyWindow[1:]
	}

	sorted := make([]time.Duration, len(m.latencyWindow))
	copy(sorted, m.latencyWindow)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	p95Index := int(float64(len(sorted)) * 0.95)
	p99Index := int(float64(len(sorted)) * 0.99)
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}
	if p99Index >= len(sorted) {
		p99Index = len(sorted) - 1
	}

	m.P95Latency = sorted[p95Index]
	m.P99Latency = sorted[p99Index]
}

// Count returns how many finished trials landed in outcome.
func (m *Metrics) Count(outcome Outcome) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Outcomes[outcome]
}

func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"worker_count":        m.WorkerCount,
		"trial_count":         m.TrialCount,
		"clean":               m.Outcomes[OutcomeClean],
		"corrected":           m.Outcomes[OutcomeCorrected],
		"detected":            m.Outcomes[OutcomeDetected],
		"undetected":          m.Outcomes[OutcomeUndetected],
		"failures":            m.Failures,
		"scheduling_failures": m.SchedulingFailures,
		"success_rate":        m.SuccessRate,
		"avg_latency_us":      m.AverageLatency.Microseconds(),
		"p95_latency_us":      m.P95Latency.Microseconds(),
		"p99_latency_us":      m.P99Latency.Microseconds(),
	}
}
