package metrics

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

// BusinessMetricsCollector periodically refreshes table count gauges
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	done    chan struct{}
}

func NewBusinessMetricsCollector(db *gorm.DB, m *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: m,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Start begins collection at the given interval until Stop is called
func (c *BusinessMetricsCollector) Start(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

func (c *BusinessMetricsCollector) Stop() {
	close(c.done)
}

func (c *BusinessMetricsCollector) collect() {
	var boardCount int64
	if err := c.db.Model(&domain.Board{}).Count(&boardCount).Error; err != nil {
		c.logger.Warn("Failed to count boards for metrics", zap.Error(err))
	} else {
		c.metrics.SetBoardsTotal(boardCount)
	}

	var taskCount int64
	if err := c.db.Model(&domain.Task{}).Count(&taskCount).Error; err != nil {
		c.logger.Warn("Failed to count tasks for metrics", zap.Error(err))
	} else {
		c.metrics.SetTasksTotal(taskCount)
	}
}
