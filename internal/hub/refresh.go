package hub

import (
	"github.com/cenkalti/backoff/v4"

	"github.com/rudransh-shrivastava/peer-conn/internal/config"
)

// newRefreshBackOff returns the deterministic schedule used to re-publish
// the pool. It never stops.
func newRefreshBackOff(cfg config.BackoffConfig) *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(cfg.Initial),
		backoff.WithMultiplier(cfg.Multiplier),
		backoff.WithMaxInterval(cfg.Max),
		backoff.WithRandomizationFactor(0),
		backoff.WithMaxElapsedTime(0),
	)
}
