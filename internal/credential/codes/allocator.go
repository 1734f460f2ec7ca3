package codes

import (
	"context"
	"errors"

	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/sentinel"
)

// defaultMaxAttempts bounds redraws per identifier. With the entropy budget
// of code and token spaces the ceiling only ever fires on a storage fault.
const defaultMaxAttempts = 5

// InsertFunc persists a record carrying the candidate identifiers. It must
// return sentinel.ErrDuplicateCode or sentinel.ErrDuplicateToken (wrapped is
// fine) when a unique constraint rejects a candidate, which is the
// authoritative collision signal closing the race a pre-insert existence
// check would leave open.
type InsertFunc func(ctx context.Context, code, token string) error

// Allocator couples identifier generation with the storage uniqueness check.
type Allocator struct {
	maxAttempts int
	onRetry     func()
}

// AllocatorOption configures an Allocator.
type AllocatorOption func(*Allocator)

// WithMaxAttempts overrides the redraw ceiling per identifier.
func WithMaxAttempts(n int) AllocatorOption {
	return func(a *Allocator) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

// WithRetryHook registers a callback invoked on every collision redraw,
// used to feed the retry counter metric.
func WithRetryHook(hook func()) AllocatorOption {
	return func(a *Allocator) {
		a.onRetry = hook
	}
}

// NewAllocator constructs an Allocator.
func NewAllocator(opts ...AllocatorOption) *Allocator {
	a := &Allocator{maxAttempts: defaultMaxAttempts}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Allocate draws identifier candidates and invokes insert until the insert
// succeeds, redrawing only the colliding identifier on a duplicate signal.
// Returns the identifiers the successful insert carried.
func (a *Allocator) Allocate(ctx context.Context, insert InsertFunc) (code, token string, err error) {
	code, err = GenerateCode()
	if err != nil {
		return "", "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate verification code")
	}
	token = GenerateToken()

	codeAttempts, tokenAttempts := 1, 1
	for {
		insertErr := insert(ctx, code, token)
		switch {
		case insertErr == nil:
			return code, token, nil

		case errors.Is(insertErr, sentinel.ErrDuplicateCode):
			if codeAttempts >= a.maxAttempts {
				return "", "", dErrors.New(dErrors.CodeIdentifierExhausted,
					"could not allocate a unique verification code")
			}
			codeAttempts++
			a.retried()
			if code, err = GenerateCode(); err != nil {
				return "", "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate verification code")
			}

		case errors.Is(insertErr, sentinel.ErrDuplicateToken):
			if tokenAttempts >= a.maxAttempts {
				return "", "", dErrors.New(dErrors.CodeIdentifierExhausted,
					"could not allocate a unique public token")
			}
			tokenAttempts++
			a.retried()
			token = GenerateToken()

		default:
			return "", "", insertErr
		}
	}
}

func (a *Allocator) retried() {
	if a.onRetry != nil {
		a.onRetry()
	}
}
