package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Sweeper purges expired sessions and reports how many were removed.
type Sweeper interface {
	CleanupExpired(ctx context.Context) (int, error)
}

// CleanupJob runs the expiration sweep on a fixed interval until stopped.
type CleanupJob struct {
	sweeper  Sweeper
	interval time.Duration
	done     chan struct{}
}

func NewCleanupJob(sweeper Sweeper, interval time.Duration) *CleanupJob {
	return &CleanupJob{
		sweeper:  sweeper,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (j *CleanupJob) Start() {
	go j.run()
	log.Info().Dur("interval", j.interval).Msg("cleanup job started")
}

func (j *CleanupJob) Stop() {
	close(j.done)
	log.Info().Msg("cleanup job stopped")
}

func (j *CleanupJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.sweep()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *CleanupJob) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := j.sweeper.CleanupExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to cleanup expired sessions")
	} else if count > 0 {
		log.Info().Int("count", count).Msg("cleaned up expired sessions")
	}
}
