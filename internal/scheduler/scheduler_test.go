package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transactions-report/internal/logging"
)

type countingSeeder struct {
	mu       sync.Mutex
	calls    int
	err      error
	deadline bool
}

func (s *countingSeeder) Seed(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	_, s.deadline = ctx.Deadline()
	logging.GetLogData(ctx).AddData("fromSeeder", true)
	return 60, s.err
}

func (s *countingSeeder) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestScheduler(buf *bytes.Buffer) *Scheduler {
	logger := logging.SetupLogging(logrus.InfoLevel)
	logger.Out = buf
	return New(logger)
}

func TestScheduleSeed_InvalidSpec(t *testing.T) {
	s := newTestScheduler(&bytes.Buffer{})

	err := s.ScheduleSeed("every tuesday", &countingSeeder{}, time.Second)
	assert.ErrorContains(t, err, "every tuesday")
}

func TestRunSeed_LogsOutcome(t *testing.T) {
	buf := &bytes.Buffer{}
	s := newTestScheduler(buf)
	seeder := &countingSeeder{}

	s.runSeed(seeder, time.Second)

	assert.Equal(t, 1, seeder.Calls())
	assert.True(t, seeder.deadline)
	assert.Contains(t, buf.String(), "Scheduler.Seed.Complete")
	assert.Contains(t, buf.String(), `"seeded":60`)
	assert.Contains(t, buf.String(), `"fromSeeder":true`)
}

func TestRunSeed_LogsError(t *testing.T) {
	buf := &bytes.Buffer{}
	s := newTestScheduler(buf)

	s.runSeed(&countingSeeder{err: errors.New("upstream down")}, time.Second)

	assert.Contains(t, buf.String(), "Scheduler.Seed.Error")
	assert.Contains(t, buf.String(), "upstream down")
}

func TestScheduler_StartStop(t *testing.T) {
	s := newTestScheduler(&bytes.Buffer{})
	seeder := &countingSeeder{}
	require.NoError(t, s.ScheduleSeed("@every 1s", seeder, time.Second))

	s.Start()
	assert.Eventually(t, func() bool { return seeder.Calls() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
