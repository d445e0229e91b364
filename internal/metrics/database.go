package metrics

import "time"

// RecordDBQuery records a database query's duration, and its error if any
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
		if err != nil {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}

// UpdateDBStats updates connection pool gauges
func (m *Metrics) UpdateDBStats(open, inUse, idle, maxOpen int) {
	m.safeExecute("UpdateDBStats", func() {
		m.DBConnectionsOpen.Set(float64(open))
		m.DBConnectionsInUse.Set(float64(inUse))
		m.DBConnectionsIdle.Set(float64(idle))
		m.DBConnectionsMax.Set(float64(maxOpen))
	})
}
