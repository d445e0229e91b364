package metrics

import "time"

// RecordExternalAPIRequest records an outbound collaborator call
func (m *Metrics) RecordExternalAPIRequest(service, operation string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordExternalAPIRequest", func() {
		status := categorizeStatus(statusCode)
		m.ExternalAPIRequestsTotal.WithLabelValues(service, operation, status).Inc()
		m.ExternalAPIRequestDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
	})
}

// RecordExternalAPIError records a failed outbound collaborator call
func (m *Metrics) RecordExternalAPIError(service, operation string) {
	m.safeExecute("RecordExternalAPIError", func() {
		m.ExternalAPIErrors.WithLabelValues(service, operation).Inc()
	})
}
