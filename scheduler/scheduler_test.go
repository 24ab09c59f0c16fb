package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls atomic.Int32
	ttl   atomic.Int64
}

func (c *countingSweeper) Sweep(ttl time.Duration) int {
	c.calls.Add(1)
	c.ttl.Store(int64(ttl))
	return 1
}

func TestSweepSessions(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler(sweeper, 15*time.Minute, time.Hour)

	assert.Equal(t, 1, s.SweepSessions())
	assert.Equal(t, int32(1), sweeper.calls.Load())
	assert.Equal(t, int64(15*time.Minute), sweeper.ttl.Load())
}

func TestSchedulerTicks(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler(sweeper, time.Minute, 5*time.Millisecond)
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return sweeper.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestStopIsIdempotent(t *testing.T) {
	s := NewScheduler(&countingSweeper{}, time.Minute, time.Hour)
	s.Start()

	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
}
