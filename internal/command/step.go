package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/danielyoungkimball/oneoff-mvp/internal/metrics"
)

var errStepPanicked = errors.New("step panicked")

// StepOutcome is the result of one upstream call made while assembling a feed.
// A failed outcome carries the zero value of T so that callers can use Value
// unconditionally.
type StepOutcome[T any] struct {
	Value T
	Err   error
}

func (o StepOutcome[T]) OK() bool {
	return o.Err == nil
}

// runStep calls fn and converts any error or panic into a failed outcome. The
// failure is logged with the step name and user and counted in metrics; it is
// never returned to the caller.
func runStep[T any](
	ctx context.Context,
	collector *metrics.Collector,
	step, userID string,
	fn func(context.Context) (T, error),
) StepOutcome[T] {
	value, err := callStep(ctx, fn)
	collector.RecordFeedStep(step, err == nil)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "feed step failed, continuing without it",
			"step", step, "user_id", userID, "error", err)
		var zero T
		return StepOutcome[T]{Value: zero, Err: err}
	}
	return StepOutcome[T]{Value: value}
}

func callStep[T any](ctx context.Context, fn func(context.Context) (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value, err = zero, fmt.Errorf("%w: %v", errStepPanicked, r)
		}
	}()
	return fn(ctx)
}
