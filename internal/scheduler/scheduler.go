// Package scheduler runs periodic background jobs such as re-seeding.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transactions-report/internal/logging"
)

// Seeder replaces the stored dataset.
type Seeder interface {
	Seed(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron *cron.Cron
	log  *logrus.Logger
}

func New(log *logrus.Logger) *Scheduler {
	cronLogger := cronLogger{log: log}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		log: log,
	}
}

// ScheduleSeed runs seeder on spec, a standard five field cron expression
// or descriptor such as "@daily". Each run is bounded by timeout.
func (s *Scheduler) ScheduleSeed(spec string, seeder Seeder, timeout time.Duration) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.runSeed(seeder, timeout)
	})
	if err != nil {
		return fmt.Errorf("schedule seed %q: %w", spec, err)
	}
	s.log.WithField("schedule", spec).Info("Scheduler.ScheduleSeed")
	return nil
}

func (s *Scheduler) runSeed(seeder Seeder, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logData := logging.NewLogData(s.log)
	endTimer := logData.AddTiming("duration")
	inserted, err := seeder.Seed(logging.WithLogData(ctx, logData))
	endTimer()

	if err != nil {
		logData.Log().WithError(err).Error("Scheduler.Seed.Error")
		return
	}
	logData.AddData("seeded", inserted)
	logData.Log().Info("Scheduler.Seed.Complete")
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for a running job or for ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts logrus to cron.Logger.
type cronLogger struct {
	log *logrus.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Debug("cron." + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).WithError(err).Error("cron." + msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	out := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return out
}
