// Package metrics provides Prometheus metrics for the Grandstand fan engagement service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core Business Metrics - What really matters for fan engagement
	predictionsTotal  *prometheus.CounterVec
	closeMatches      prometheus.Counter
	quizzesGenerated  *prometheus.CounterVec
	quizzesGraded     prometheus.Counter
	pointsAwarded     *prometheus.CounterVec
	badgesAwarded     *prometheus.CounterVec
	chatMessages      *prometheus.CounterVec
	rewardActions     *prometheus.CounterVec
	leaderboardViews  prometheus.Counter

	// Completion (external LLM) Metrics
	completionRequests  *prometheus.CounterVec
	completionFallbacks prometheus.Counter
	completionLatency   prometheus.Histogram

	// Store Metrics
	storeLatency *prometheus.HistogramVec
	storeErrors  *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "grandstand",
		subsystem:        "engagement",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.predictionsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "predictions_total",
		Help:      "Match predictions served, labeled by source (engine or completion).",
	}, []string{"source"})

	m.closeMatches = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "prediction_close_matches_total",
		Help:      "Predictions that fell into the close-match random branch.",
	})

	m.quizzesGenerated = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "quizzes_generated_total",
		Help:      "Quizzes generated, labeled by source (completion or fallback).",
	}, []string{"source"})

	m.quizzesGraded = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "quizzes_graded_total",
		Help:      "Quiz submissions graded.",
	})

	m.pointsAwarded = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "points_awarded_total",
		Help:      "Reward points awarded, labeled by event kind.",
	}, []string{"event"})

	m.badgesAwarded = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "badges_awarded_total",
		Help:      "Badges unlocked, labeled by badge id.",
	}, []string{"badge"})

	m.chatMessages = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "chat_messages_total",
		Help:      "Chat messages processed, labeled by routed tool.",
	}, []string{"tool"})

	m.rewardActions = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reward_actions_total",
		Help:      "Reward ledger actions applied, labeled by action and outcome.",
	}, []string{"action", "outcome"})

	m.leaderboardViews = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_views_total",
		Help:      "Leaderboard queries served.",
	})

	m.completionRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "completion",
		Name:      "requests_total",
		Help:      "Outbound completion requests, labeled by outcome.",
	}, []string{"outcome"})

	m.completionFallbacks = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "completion",
		Name:      "fallbacks_total",
		Help:      "Times the deterministic fallback replaced a completion result.",
	})

	m.completionLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "completion",
		Name:      "latency_ms",
		Help:      "Completion round-trip latency in milliseconds.",
		Buckets:   m.histogramBuckets,
	})

	m.storeLatency = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "latency_ms",
		Help:      "User store operation latency in milliseconds, labeled by operation.",
		Buckets:   m.histogramBuckets,
	}, []string{"op"})

	m.storeErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "errors_total",
		Help:      "User store errors, labeled by operation.",
	}, []string{"op"})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests, labeled by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_bytes",
		Help:      "Allocated heap bytes.",
	})

	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Current goroutine count.",
	})
}

// Business metric helpers.

// RecordPrediction increments the prediction counter for a source ("engine" or "completion").
func RecordPrediction(source string) {
	globalManager.predictionsTotal.WithLabelValues(source).Inc()
}

// RecordCloseMatch increments the close-match branch counter.
func RecordCloseMatch() {
	globalManager.closeMatches.Inc()
}

// RecordQuizGenerated increments the quiz counter for a source ("completion" or "fallback").
func RecordQuizGenerated(source string) {
	globalManager.quizzesGenerated.WithLabelValues(source).Inc()
}

// RecordQuizGraded increments the graded quiz counter.
func RecordQuizGraded() {
	globalManager.quizzesGraded.Inc()
}

// RecordPointsAwarded adds awarded points for an event kind ("quiz" or "prediction").
func RecordPointsAwarded(event string, points int) {
	globalManager.pointsAwarded.WithLabelValues(event).Add(float64(points))
}

// RecordBadgeAwarded increments the badge counter for a badge id.
func RecordBadgeAwarded(badgeID string) {
	globalManager.badgesAwarded.WithLabelValues(badgeID).Inc()
}

// RecordChatMessage increments the chat counter for a routed tool ("none" when chatting).
func RecordChatMessage(tool string) {
	globalManager.chatMessages.WithLabelValues(tool).Inc()
}

// RecordRewardAction increments the ledger action counter.
func RecordRewardAction(action, outcome string) {
	globalManager.rewardActions.WithLabelValues(action, outcome).Inc()
}

// RecordLeaderboardView increments the leaderboard counter.
func RecordLeaderboardView() {
	globalManager.leaderboardViews.Inc()
}

// Completion metric helpers.

// RecordCompletionRequest increments the completion counter for an outcome
// ("ok", "http_error", "parse_error", "timeout").
func RecordCompletionRequest(outcome string) {
	globalManager.completionRequests.WithLabelValues(outcome).Inc()
}

// RecordCompletionFallback increments the fallback counter.
func RecordCompletionFallback() {
	globalManager.completionFallbacks.Inc()
}

// RecordCompletionLatency records completion round-trip latency.
func RecordCompletionLatency(latencyMs float64) {
	globalManager.completionLatency.Observe(latencyMs)
}

// Store metric helpers.

// RecordStoreLatency records a store operation latency.
func RecordStoreLatency(op string, latencyMs float64) {
	globalManager.storeLatency.WithLabelValues(op).Observe(latencyMs)
}

// RecordStoreError increments the store error counter for an operation.
func RecordStoreError(op string) {
	globalManager.storeErrors.WithLabelValues(op).Inc()
}

// HTTP metric helpers.

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// System metric helpers.

// UpdateSystemMemoryUsage sets the allocated heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry backing the global manager, for exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
