package metrics

import (
	"strconv"
	"time"
)

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		statusStr := strconv.Itoa(status)
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusStr).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// categorizeStatus groups status codes into classes
func categorizeStatus(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// ShouldSkipEndpoint reports whether an endpoint is excluded from HTTP metrics
func ShouldSkipEndpoint(endpoint string) bool {
	skipEndpoints := []string{
		"/metrics",
		"/health",
		"/ready",
	}
	for _, skip := range skipEndpoints {
		if endpoint == skip {
			return true
		}
	}
	return false
}
