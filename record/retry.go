package record

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jmgilman/go/basictar/errors"
)

// run calls step once, or, with a retry policy configured, until it succeeds,
// fails with a non-retryable error, or the policy gives up.
func (o *options) run(ctx context.Context, op string, step func() error) error {
	if o.backoff == nil {
		return step()
	}

	attempt := func() error {
		err := step()
		if err != nil && !errors.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		o.logger.WarnContext(ctx, "transient stream failure, retrying",
			"operation", op,
			"delay", delay,
			"error", err)
	}
	return backoff.RetryNotify(attempt, backoff.WithContext(o.backoff, ctx), notify)
}
