package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"refgate.backend/internal/infrastructure/repositories"
	"refgate.backend/pkg/logger"
)

type nonceSweeper interface {
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// NonceExpiryJob sweeps expired challenge nonces. Consumption already
// deletes expired rows on lookup; the sweep only reclaims nonces that
// were issued and never presented.
type NonceExpiryJob struct {
	repo     nonceSweeper
	interval time.Duration
	stop     chan struct{}
}

func NewNonceExpiryJob(repo *repositories.NonceRepository) *NonceExpiryJob {
	return &NonceExpiryJob{
		repo:     repo,
		interval: time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *NonceExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting nonce expiry sweep job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-j.stop:
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *NonceExpiryJob) Stop() {
	close(j.stop)
}

func (j *NonceExpiryJob) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	swept, err := j.repo.DeleteExpired(sweepCtx, time.Now())
	if err != nil {
		logger.Error(ctx, "Nonce expiry sweep failed", zap.Error(err))
		return
	}
	if swept > 0 {
		logger.Debug(ctx, "Swept expired nonces", zap.Int64("count", swept))
	}
}
