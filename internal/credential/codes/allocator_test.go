package codes

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/sentinel"
)

func TestAllocate_FirstAttemptSucceeds(t *testing.T) {
	allocator := NewAllocator()
	calls := 0

	code, token, err := allocator.Allocate(context.Background(), func(_ context.Context, code, token string) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Len(t, code, CodeLength)
	assert.NotEmpty(t, token)
}

func TestAllocate_RedrawsOnlyCollidingCode(t *testing.T) {
	allocator := NewAllocator()
	var codes, tokens []string

	_, _, err := allocator.Allocate(context.Background(), func(_ context.Context, code, token string) error {
		codes = append(codes, code)
		tokens = append(tokens, token)
		if len(codes) < 3 {
			return fmt.Errorf("insert: %w", sentinel.ErrDuplicateCode)
		}
		return nil
	})

	require.NoError(t, err)
	require.Len(t, codes, 3)
	assert.NotEqual(t, codes[0], codes[1])
	assert.NotEqual(t, codes[1], codes[2])
	// Token never collided, so the same candidate is reused on every attempt.
	assert.Equal(t, tokens[0], tokens[1])
	assert.Equal(t, tokens[1], tokens[2])
}

func TestAllocate_RedrawsOnlyCollidingToken(t *testing.T) {
	allocator := NewAllocator()
	var codes, tokens []string

	_, _, err := allocator.Allocate(context.Background(), func(_ context.Context, code, token string) error {
		codes = append(codes, code)
		tokens = append(tokens, token)
		if len(tokens) < 2 {
			return fmt.Errorf("insert: %w", sentinel.ErrDuplicateToken)
		}
		return nil
	})

	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.NotEqual(t, tokens[0], tokens[1])
	assert.Equal(t, codes[0], codes[1])
}

func TestAllocate_CodeExhaustion(t *testing.T) {
	allocator := NewAllocator(WithMaxAttempts(3))
	calls := 0

	_, _, err := allocator.Allocate(context.Background(), func(_ context.Context, _, _ string) error {
		calls++
		return sentinel.ErrDuplicateCode
	})

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeIdentifierExhausted))
	assert.Equal(t, 3, calls)
}

func TestAllocate_TokenExhaustion(t *testing.T) {
	allocator := NewAllocator(WithMaxAttempts(2))

	_, _, err := allocator.Allocate(context.Background(), func(_ context.Context, _, _ string) error {
		return sentinel.ErrDuplicateToken
	})

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeIdentifierExhausted))
}

func TestAllocate_PropagatesOtherErrors(t *testing.T) {
	allocator := NewAllocator()
	boom := errors.New("connection reset")
	calls := 0

	_, _, err := allocator.Allocate(context.Background(), func(_ context.Context, _, _ string) error {
		calls++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls, "storage faults must not trigger redraws")
}

func TestAllocate_RetryHookFires(t *testing.T) {
	retries := 0
	allocator := NewAllocator(WithRetryHook(func() { retries++ }))
	attempts := 0

	_, _, err := allocator.Allocate(context.Background(), func(_ context.Context, _, _ string) error {
		attempts++
		if attempts < 3 {
			return sentinel.ErrDuplicateCode
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, retries)
}
