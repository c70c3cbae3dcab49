// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package research

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles all research sources against a shared external
// search backend. A permit is issued only when (a) at least the minimum
// interval has elapsed since the previous permit and (b) fewer than the
// concurrency cap of permits are outstanding.
//
// One instance is created per process and passed explicitly into each
// source; the limiter is the only mutable state shared across the
// aggregation fan-out.
type RateLimiter struct {
	limiter *rate.Limiter
	permits chan struct{}
}

// NewRateLimiter creates a limiter enforcing minInterval spacing and at
// most maxConcurrent outstanding permits.
func NewRateLimiter(minInterval time.Duration, maxConcurrent int) *RateLimiter {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	var limiter *rate.Limiter
	if minInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(minInterval), 1)
	} else {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &RateLimiter{
		limiter: limiter,
		permits: make(chan struct{}, maxConcurrent),
	}
}

// Acquire blocks until a permit is available or the context is done.
// The returned release function must be called exactly once when the
// guarded call finishes, regardless of its outcome.
func (rl *RateLimiter) Acquire(ctx context.Context) (release func(), err error) {
	select {
	case rl.permits <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := rl.limiter.Wait(ctx); err != nil {
		<-rl.permits
		return nil, err
	}

	return func() { <-rl.permits }, nil
}

// Outstanding reports the number of permits currently held.
func (rl *RateLimiter) Outstanding() int {
	return len(rl.permits)
}
