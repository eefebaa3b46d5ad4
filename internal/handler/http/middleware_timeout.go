// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// withTimeout bounds the request context by timeout. When the deadline
// passes and the handler has not written a response, the Internal error
// envelope is rendered instead of an empty reply.
//
// Handlers must watch r.Context() for the deadline to have any effect.
// A non-positive timeout disables the bound.
func withTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			tw := &responseWriter{ResponseWriter: w}

			defer func() {
				cancel()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) && !tw.wroteHeader {
					writeError(w, r, NewAPIError(KindInternal, msgTimeout,
						fmt.Errorf("request exceeded %s: %w", timeout, ctx.Err())))
				}
			}()

			next.ServeHTTP(tw, r.WithContext(ctx))
		})
	}
}
