package cmd

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/klwxsrx/parcelshare/pkg/log"
)

// Job runs until ctx is done or its work completes.
type Job func(context.Context) error

func MustRun(ctx context.Context, logger log.Logger, job ...Job) {
	if err := Run(ctx, logger, job...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run starts all jobs and stops the rest as soon as one of them returns.
func Run(ctx context.Context, logger log.Logger, job ...Job) error {
	errCompleted := errors.New("job completed")
	loggingAdapter := func(ctx context.Context, job Job) func() error {
		return func() error {
			err := job(ctx)
			if err == nil || errors.Is(err, ctx.Err()) {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, j := range job {
		group.Go(loggingAdapter(groupCtx, j))
	}

	err := group.Wait()
	if !errors.Is(err, errCompleted) {
		return err
	}

	return nil
}
