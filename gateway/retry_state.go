package gateway

import "context"

// RetryState tracks whether a call has already been re-issued after a refresh.
type RetryState int

const (
	NotRetried RetryState = iota
	RetriedOnce
)

func (s RetryState) String() string {
	switch s {
	case NotRetried:
		return "not_retried"
	case RetriedOnce:
		return "retried_once"
	default:
		return "unknown"
	}
}

type retryStateKey struct{}

// WithRetryState marks ctx with the retry state of the call it carries.
func WithRetryState(ctx context.Context, state RetryState) context.Context {
	return context.WithValue(ctx, retryStateKey{}, state)
}

// RetryStateFrom returns the retry state in ctx, NotRetried when unset.
func RetryStateFrom(ctx context.Context) RetryState {
	if state, ok := ctx.Value(retryStateKey{}).(RetryState); ok {
		return state
	}
	return NotRetried
}
