package metrics

import (
	"regexp"
	"strconv"
	"time"
)

var uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// RecordExternalAPICall records metrics for an outbound API call
func (m *Metrics) RecordExternalAPICall(endpoint, method string, status int, duration time.Duration, err error) {
	m.safeExecute("RecordExternalAPICall", func() {
		normalized := normalizeEndpoint(endpoint)
		statusStr := strconv.Itoa(status)

		m.ExternalAPIRequestsTotal.WithLabelValues(normalized, method, statusStr).Inc()
		m.ExternalAPIRequestDuration.WithLabelValues(normalized, categorizeStatus(status)).Observe(duration.Seconds())

		if err != nil || status >= 400 {
			m.ExternalAPIErrors.WithLabelValues(normalized, getErrorType(status, err)).Inc()
		}
	})
}

// normalizeEndpoint replaces path IDs to keep label cardinality bounded
func normalizeEndpoint(endpoint string) string {
	return uuidPattern.ReplaceAllString(endpoint, "{id}")
}

func getErrorType(status int, err error) string {
	if err != nil {
		return "network_error"
	}
	switch {
	case status >= 400 && status < 500:
		return "client_error"
	case status >= 500:
		return "server_error"
	default:
		return "unknown"
	}
}
