// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

// Package ratelimit throttles publishes through a context-carried limiter.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

type ctxKeyType struct{}

var ctxKey ctxKeyType

// New returns a new context that allows limit publishes per second, with
// the given burst.
func New(parent context.Context, limit rate.Limit, burst int) context.Context {
	limiter := rate.NewLimiter(limit, burst)
	return context.WithValue(parent, ctxKey, limiter)
}

// Wait blocks until the rate limit configuration permits a publish to
// happen. It returns an error if the Context is canceled, or the expected
// wait time exceeds the Context's Deadline. Contexts without a limiter
// are not limited.
func Wait(ctx context.Context) (err error) {
	if limiter, ok := ctx.Value(ctxKey).(*rate.Limiter); ok {
		return limiter.Wait(ctx)
	}
	return nil
}
