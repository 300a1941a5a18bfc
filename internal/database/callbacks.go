package database

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats sql.DBStats)
}

// RegisterMetricsCallbacks registers GORM callbacks that time every query,
// insert, update and delete and report them to the recorder.
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	record := func(operation string) func(*gorm.DB) {
		return func(db *gorm.DB) {
			if startTime, ok := db.InstanceGet("query_start_time"); ok {
				duration := time.Since(startTime.(time.Time))
				table := db.Statement.Table
				if table == "" {
					table = "unknown"
				}
				recorder.RecordDBQuery(operation, table, duration, db.Error)
			}
		}
	}
	start := func(db *gorm.DB) {
		db.InstanceSet("query_start_time", time.Now())
	}

	db.Callback().Query().Before("gorm:query").Register("metrics:query_before", start)
	db.Callback().Query().After("gorm:query").Register("metrics:query_after", record("select"))

	db.Callback().Create().Before("gorm:create").Register("metrics:create_before", start)
	db.Callback().Create().After("gorm:create").Register("metrics:create_after", record("insert"))

	db.Callback().Update().Before("gorm:update").Register("metrics:update_before", start)
	db.Callback().Update().After("gorm:update").Register("metrics:update_after", record("update"))

	db.Callback().Delete().Before("gorm:delete").Register("metrics:delete_before", start)
	db.Callback().Delete().After("gorm:delete").Register("metrics:delete_after", record("delete"))
}

// StartDBStatsCollector starts periodic connection-pool stats collection.
// Close the returned channel to stop it.
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
