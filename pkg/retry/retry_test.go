package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedDelay_SucceedsBeforeExhaustion(t *testing.T) {
	policy := NewFixedDelay(&Config{MaxAttempts: 3, Delay: time.Millisecond})

	calls := 0
	err := policy.Execute(func() error {
		calls++
		if calls < 2 {
			return errors.New("connection refused")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFixedDelay_ExhaustsAttempts(t *testing.T) {
	policy := NewFixedDelay(&Config{MaxAttempts: 3, Delay: time.Millisecond})

	calls := 0
	err := policy.Execute(func() error {
		calls++
		return errors.New("connection refused")
	})

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, IsMaxRetriesExceeded(err))
}

func TestFixedDelay_RetriesUnrecognizedErrors(t *testing.T) {
	policy := NewFixedDelay(&Config{MaxAttempts: 5, Delay: time.Millisecond})

	// Errors whose text names no known transient condition still get the
	// full attempt budget; auth failures and odd driver messages look like
	// this while a dependency is starting up.
	calls := 0
	sentinel := errors.New("pq: password authentication failed")
	err := policy.Execute(func() error {
		calls++
		return sentinel
	})

	assert.Error(t, err)
	assert.Equal(t, 5, calls)
	assert.True(t, IsMaxRetriesExceeded(err))
	assert.ErrorIs(t, err, sentinel)
}
