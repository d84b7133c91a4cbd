package infra

import "sync/atomic"

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety.
type Metrics struct {
	messagesReceived  atomic.Uint64
	messagesBroadcast atomic.Uint64
	directivesRun     atomic.Uint64
	fetchesFailed     atomic.Uint64

	activeConnections atomic.Int32
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordMessage records one inbound chat line.
func (m *Metrics) RecordMessage() {
	m.messagesReceived.Add(1)
}

// RecordBroadcast records one fan-out call.
func (m *Metrics) RecordBroadcast() {
	m.messagesBroadcast.Add(1)
}

// RecordDirective records one executed exchange directive.
func (m *Metrics) RecordDirective() {
	m.directivesRun.Add(1)
}

// RecordFetchFailure records one skipped archive date.
func (m *Metrics) RecordFetchFailure() {
	m.fetchesFailed.Add(1)
}

// IncrementConnections increments active connections by 1.
func (m *Metrics) IncrementConnections() {
	m.activeConnections.Add(1)
}

// DecrementConnections decrements active connections by 1.
func (m *Metrics) DecrementConnections() {
	m.activeConnections.Add(-1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	MessagesReceived  uint64 `json:"messages_received"`
	MessagesBroadcast uint64 `json:"messages_broadcast"`
	DirectivesRun     uint64 `json:"directives_run"`
	FetchesFailed     uint64 `json:"fetches_failed"`
	ActiveConnections int32  `json:"active_connections"`
}

// Snapshot returns the current metric values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		MessagesReceived:  m.messagesReceived.Load(),
		MessagesBroadcast: m.messagesBroadcast.Load(),
		DirectivesRun:     m.directivesRun.Load(),
		FetchesFailed:     m.fetchesFailed.Load(),
		ActiveConnections: m.activeConnections.Load(),
	}
}
