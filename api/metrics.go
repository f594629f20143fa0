package api

import (
	"encoding/json"
	"net/http"
	"regexp"
	"sort"
	"sync"
	"time"
)

// RequestTrace is the timing of a single request
type RequestTrace struct {
	RequestID string        `json:"requestId"`
	Method    string        `json:"method"`
	Path      string        `json:"path"`
	Status    int           `json:"status"`
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`
}

// RouteMetrics aggregates metrics for a specific route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsSummary is the body of the metrics endpoint
type MetricsSummary struct {
	TotalRequests int64           `json:"totalRequests"`
	TotalErrors   int64           `json:"totalErrors"`
	ErrorRate     float64         `json:"errorRate"`
	Since         time.Time       `json:"since"`
	Routes        []*RouteMetrics `json:"routes"`
}

// MetricsCollector collects and aggregates request metrics
type MetricsCollector struct {
	mu            sync.RWMutex
	routeMetrics  map[string]*RouteMetrics
	since         time.Time
	totalRequests int64
	totalErrors   int64
}

// NewMetricsCollector creates an empty collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		routeMetrics: make(map[string]*RouteMetrics),
		since:        time.Now(),
	}
}

// RecordTrace folds a finished request into its route's aggregate
func (mc *MetricsCollector) RecordTrace(trace RequestTrace) {
	path := normalizeRoutePath(trace.Path)
	routeKey := trace.Method + " " + path

	mc.mu.Lock()
	defer mc.mu.Unlock()

	metrics, exists := mc.routeMetrics[routeKey]
	if !exists {
		metrics = &RouteMetrics{
			Method:  trace.Method,
			Path:    path,
			MinTime: trace.Duration,
		}
		mc.routeMetrics[routeKey] = metrics
	}

	metrics.Count++
	metrics.TotalTime += trace.Duration
	metrics.AvgTime = metrics.TotalTime / time.Duration(metrics.Count)
	metrics.LastRequest = trace.StartTime
	if trace.Duration < metrics.MinTime {
		metrics.MinTime = trace.Duration
	}
	if trace.Duration > metrics.MaxTime {
		metrics.MaxTime = trace.Duration
	}

	mc.totalRequests++
	if trace.Status >= 400 {
		metrics.ErrorCount++
		mc.totalErrors++
	}
}

// Summary returns a snapshot of every route, busiest first
func (mc *MetricsCollector) Summary() MetricsSummary {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	routes := make([]*RouteMetrics, 0, len(mc.routeMetrics))
	for _, m := range mc.routeMetrics {
		cp := *m
		routes = append(routes, &cp)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Count != routes[j].Count {
			return routes[i].Count > routes[j].Count
		}
		return routes[i].Method+" "+routes[i].Path < routes[j].Method+" "+routes[j].Path
	})

	summary := MetricsSummary{
		TotalRequests: mc.totalRequests,
		TotalErrors:   mc.totalErrors,
		Since:         mc.since,
		Routes:        routes,
	}
	if mc.totalRequests > 0 {
		summary.ErrorRate = float64(mc.totalErrors) / float64(mc.totalRequests)
	}
	return summary
}

// SummaryHandler serves the collector's summary as JSON
func (mc *MetricsCollector) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(mc.Summary())
}

var (
	objectIDSegment = regexp.MustCompile(`/[0-9a-fA-F]{24}(/|$)`)
	uuidSegment     = regexp.MustCompile(`/[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}(/|$)`)
)

// normalizeRoutePath groups requests for different documents under one route
//   - /api/v1/patients/507f1f77bcf86cd799439011/vitals -> /api/v1/patients/{id}/vitals
func normalizeRoutePath(path string) string {
	// ReplaceAll does not revisit the shared slash, so run twice for adjacent ids
	for i := 0; i < 2; i++ {
		path = objectIDSegment.ReplaceAllString(path, "/{id}$1")
		path = uuidSegment.ReplaceAllString(path, "/{id}$1")
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}
