package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/botfut/botfut/utils/logger"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	// Retry runs operation until it succeeds, returns a permanent error or runs out of attempts.
	// When it gives up, exhausted is called with the last error and its result is returned.
	Retry(ctx context.Context, operation func() error, exhausted func(err error) error) error
	Stop(err error) error
}

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
	Multiplier      float64
}

type exponentialBackoff struct {
	cfg Config
}

func NewExponentialBackOff(cfg Config) Retryer {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = backoff.DefaultInitialInterval
	}
	if cfg.MaxElapsedTime < 0 {
		cfg.MaxElapsedTime = backoff.DefaultMaxElapsedTime
	}
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = backoff.DefaultMultiplier
	}
	return &exponentialBackoff{cfg: cfg}
}

func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error, exhausted func(err error) error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.cfg.InitialInterval
	eb.MaxElapsedTime = r.cfg.MaxElapsedTime
	eb.Multiplier = r.cfg.Multiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.cfg.MaxRetries), ctx))
	if err == nil {
		return nil
	}

	logger.Warn("[Retry] giving up", zap.Error(err))
	if exhausted == nil {
		return err
	}
	return exhausted(err)
}

// Stop marks err as permanent; returned from operation it ends the retry loop at once.
func (r *exponentialBackoff) Stop(err error) error {
	return backoff.Permanent(err)
}
