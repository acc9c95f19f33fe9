package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"legal-board-api/internal/domain"
)

// ExpiredDeadlineFinder returns unfinished deadlines that ended on or before a day
type ExpiredDeadlineFinder interface {
	FindExpired(ctx context.Context, today domain.Day) ([]*domain.Deadline, error)
}

// ExpiredRecorder publishes the number of expired deadlines
type ExpiredRecorder interface {
	SetDeadlinesExpired(count int)
}

// DeadlineSweepJob counts the deadlines that expired without being finished
type DeadlineSweepJob struct {
	finder   ExpiredDeadlineFinder
	recorder ExpiredRecorder
	timeout  time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// NewDeadlineSweepJob creates a new DeadlineSweepJob instance
func NewDeadlineSweepJob(finder ExpiredDeadlineFinder, recorder ExpiredRecorder, logger *zap.Logger) *DeadlineSweepJob {
	return &DeadlineSweepJob{
		finder:   finder,
		recorder: recorder,
		timeout:  30 * time.Second,
		now:      time.Now,
		logger:   logger,
	}
}

// Run executes one sweep. It implements cron.Job.
func (j *DeadlineSweepJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	now := j.now()
	j.logger.Info("Starting deadline sweep")

	candidates, err := j.finder.FindExpired(ctx, domain.NewDay(now.UTC()))
	if err != nil {
		j.logger.Error("Failed to find expired deadlines", zap.Error(err))
		return
	}

	expired := 0
	for _, d := range candidates {
		if !d.Expired(now) {
			continue
		}
		expired++
		j.logger.Debug("Deadline expired",
			zap.String("deadline_id", d.ID.String()),
			zap.String("process_id", d.ProcessID.String()),
			zap.String("estado", string(d.Status)),
			zap.Stringer("fecha_finaliza_termino", d.EndDate),
		)
	}

	if j.recorder != nil {
		j.recorder.SetDeadlinesExpired(expired)
	}

	j.logger.Info("Deadline sweep completed", zap.Int("expired", expired))
}
