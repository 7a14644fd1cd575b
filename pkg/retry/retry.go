package retry

import (
	"errors"
	"time"
)

type RetryPolicy interface {
	Execute(func() error) error
}

type Config struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultConfig returns conservative defaults for fixed-delay retries.
func DefaultConfig() *Config {
	return &Config{
		MaxAttempts: 3,
		Delay:       100 * time.Millisecond,
	}
}

// FixedDelay retries with a constant delay between attempts. Every error is
// retried: at startup the error text for an unreachable dependency varies by
// platform and driver, so attempt classification would cut the loop short.
type FixedDelay struct {
	config *Config
}

// NewFixedDelay applies defaults when config is nil.
func NewFixedDelay(config *Config) *FixedDelay {
	if config == nil {
		config = DefaultConfig()
	}
	return &FixedDelay{config: config}
}

func (fd *FixedDelay) Execute(fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= fd.config.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt == fd.config.MaxAttempts {
			break
		}

		time.Sleep(fd.config.Delay)
	}

	return &MaxRetriesExceededError{
		LastError:   lastErr,
		MaxAttempts: fd.config.MaxAttempts,
	}
}

// MaxRetriesExceededError indicates that all retry attempts were exhausted.
type MaxRetriesExceededError struct {
	LastError   error
	MaxAttempts int
}

func (e *MaxRetriesExceededError) Error() string {
	return "max retries exceeded"
}

func (e *MaxRetriesExceededError) Unwrap() error {
	return e.LastError
}

// IsMaxRetriesExceeded reports whether err is a MaxRetriesExceededError.
func IsMaxRetriesExceeded(err error) bool {
	var maxRetriesErr *MaxRetriesExceededError
	return errors.As(err, &maxRetriesErr)
}
