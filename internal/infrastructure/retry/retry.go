// Package retry runs an operation with capped exponential backoff.
// Upstream lookups use it with a single attempt unless retries are configured.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts (including the initial attempt).
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows after each retry.
	Multiplier float64

	// JitterFactor adds up to this fraction of the delay as random jitter (0.0 to 1.0).
	JitterFactor float64

	// RetryIf decides whether an error is retryable. If nil, all errors except
	// Permanent ones are retried.
	RetryIf func(error) bool

	// OnRetry, when set, is called before sleeping ahead of attempt+1.
	OnRetry func(attempt int, err error)
}

// NoRetry performs exactly one attempt.
var NoRetry = Config{MaxAttempts: 1}

// UpstreamConfig suits calls to a rate-limited third-party API.
var UpstreamConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// DoWithResult executes fn with retry logic and returns its result.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	retryIf := cfg.RetryIf
	if retryIf == nil {
		retryIf = SkipPermanent
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if attempt == cfg.MaxAttempts || !retryIf(lastErr) {
			break
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr)
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(sleepTime(delay, cfg.MaxDelay, cfg.JitterFactor)):
		}

		if cfg.Multiplier > 0 {
			delay = time.Duration(float64(delay) * cfg.Multiplier)
		}
	}

	return result, lastErr
}

// sleepTime computes the sleep duration with jitter, capped at maxDelay when set.
func sleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	d := delay + jitter
	if maxDelay > 0 && d > maxDelay {
		d = maxDelay
	}
	return d
}

// Permanent wraps an error to indicate it should not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent creates a permanent (non-retryable) error.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent checks if an error is permanent.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that skips permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}

// WithRetryIf returns a copy of the config with the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a copy of the config with the given max attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a copy of the config with the given initial delay.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}

// WithOnRetry returns a copy of the config with the given retry hook.
func (c Config) WithOnRetry(fn func(attempt int, err error)) Config {
	c.OnRetry = fn
	return c
}
