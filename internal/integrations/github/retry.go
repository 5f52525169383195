// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package github

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/go-github/v60/github"
)

// RetryConfig holds configuration for exponential backoff retry.
type RetryConfig struct {
	MaxRetries  int           // Maximum number of retry attempts (default: 4)
	BaseDelay   time.Duration // Initial delay before first retry (default: 2s)
	MaxDelay    time.Duration // Maximum delay cap (default: 60s)
	JitterRatio float64       // Jitter as fraction of delay, 0.0-1.0 (default: 0.25)
}

// DefaultRetryConfig returns the backoff used for GitHub write calls.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:  4,
		BaseDelay:   2 * time.Second,
		MaxDelay:    60 * time.Second,
		JitterRatio: 0.25,
	}
}

// retryAfter reports whether err is a transient GitHub error and, when the
// API named one, how long to wait before the next attempt.
// Rate limits and gateway errors are retried; every other status is final,
// since a write that reached GitHub must not be submitted twice.
func retryAfter(err error) (bool, time.Duration) {
	if err == nil {
		return false, 0
	}

	var abuse *github.AbuseRateLimitError
	if errors.As(err, &abuse) {
		return true, abuse.GetRetryAfter()
	}

	var rate *github.RateLimitError
	if errors.As(err, &rate) {
		return true, time.Until(rate.Rate.Reset.Time)
	}

	var resp *github.ErrorResponse
	if errors.As(err, &resp) && resp.Response != nil {
		switch resp.Response.StatusCode {
		case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true, 0
		}
	}

	return false, 0
}

// withRetry executes fn with exponential backoff. Non-retryable errors are
// returned immediately.
func withRetry[T any](ctx context.Context, cfg RetryConfig, operation string, fn func() (T, error)) (T, error) {
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		retryable, wait := retryAfter(err)
		if !retryable {
			return zero, err
		}

		if attempt == cfg.MaxRetries {
			return zero, fmt.Errorf("%s failed after %d retries: %w", operation, cfg.MaxRetries, err)
		}

		// base * 2^attempt plus jitter, capped; a server-provided wait wins when longer.
		delay := time.Duration(float64(cfg.BaseDelay) * math.Pow(2, float64(attempt)))
		if cfg.JitterRatio > 0 {
			delay += time.Duration(rand.Float64() * cfg.JitterRatio * float64(delay))
		}
		if wait > delay {
			delay = wait
		}
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}

		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("%s: context cancelled during retry: %w", operation, ctx.Err())
		case <-time.After(delay):
		}
	}

	return zero, fmt.Errorf("%s: retry loop exited unexpectedly", operation)
}
