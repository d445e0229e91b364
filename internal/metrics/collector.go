package metrics

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

// collect gathers business gauges from the database
func (c *BusinessMetricsCollector) collect() {
	c.metrics.safeExecute("business_collect", func() {
		if c.db == nil {
			return
		}
		var ruleCount int64
		if err := c.db.Table("rules").Where("deleted_at IS NULL").Count(&ruleCount).Error; err != nil {
			c.logger.Warn("Failed to count rules for metrics", zap.Error(err))
			return
		}
		c.metrics.SetRulesTotal(ruleCount)
	})
}
