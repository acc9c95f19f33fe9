package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

const startKey = "metrics:start_time"

// RegisterMetricsCallbacks times every query, create, update and delete
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(startKey, time.Now())
	}
	after := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			start, ok := tx.InstanceGet(startKey)
			if !ok {
				return
			}
			table := tx.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery(operation, table, time.Since(start.(time.Time)), tx.Error)
		}
	}

	cb := db.Callback()
	registrations := []error{
		cb.Query().Before("gorm:query").Register("metrics:select_before", before),
		cb.Query().After("gorm:query").Register("metrics:select_after", after("select")),
		cb.Create().Before("gorm:create").Register("metrics:insert_before", before),
		cb.Create().After("gorm:create").Register("metrics:insert_after", after("insert")),
		cb.Update().Before("gorm:update").Register("metrics:update_before", before),
		cb.Update().After("gorm:update").Register("metrics:update_after", after("update")),
		cb.Delete().Before("gorm:delete").Register("metrics:delete_before", before),
		cb.Delete().After("gorm:delete").Register("metrics:delete_after", after("delete")),
	}
	for _, err := range registrations {
		if err != nil {
			return err
		}
	}
	return nil
}

// StartDBStatsCollector pushes pool stats to recorder every interval until done is closed
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
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
