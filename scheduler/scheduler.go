package scheduler

import (
	"log"
	"sync"
	"time"
)

// Sweeper is anything holding idle state that can be expired.
type Sweeper interface {
	Sweep(ttl time.Duration) int
}

// Scheduler periodically evicts sessions that have been idle longer than TTL.
type Scheduler struct {
	Sessions Sweeper
	TTL      time.Duration
	Interval time.Duration

	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func NewScheduler(sessions Sweeper, ttl, interval time.Duration) *Scheduler {
	return &Scheduler{
		Sessions: sessions,
		TTL:      ttl,
		Interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins sweeping every Interval until Stop is called
func (s *Scheduler) Start() {
	s.ticker = time.NewTicker(s.Interval)
	log.Printf("Scheduler started. Sweeping sessions idle for %v every %v", s.TTL, s.Interval)

	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.SweepSessions()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop stops the scheduler; it is safe to call more than once
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
		log.Println("Scheduler stopped")
	})
}

// SweepSessions runs one eviction pass and returns how many sessions were removed
func (s *Scheduler) SweepSessions() int {
	removed := s.Sessions.Sweep(s.TTL)
	if removed > 0 {
		log.Printf("Evicted %d idle sessions", removed)
	}
	return removed
}
