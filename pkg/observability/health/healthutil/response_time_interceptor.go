/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
}

// ResponseTimes records how long each named check takes.
type ResponseTimes struct {
	mu     sync.RWMutex
	states map[string]ResponseTimeState
}

func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{states: map[string]ResponseTimeState{}}
}

// Get returns the recorded times of the check.
func (rt *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	s, ok := rt.states[name]

	return s, ok
}

func (rt *ResponseTimes) record(name string, elapsed time.Duration) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	avg := elapsed
	if prev, ok := rt.states[name]; ok {
		avg = (prev.AverageResponseTime + elapsed) / 2 //nolint:gomnd
	}

	rt.states[name] = ResponseTimeState{
		LastResponseTime:    elapsed,
		AverageResponseTime: avg,
	}
}

// Interceptor measures every check it wraps.
func (rt *ResponseTimes) Interceptor() health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			started := time.Now()

			result := next(ctx, name, state)

			rt.record(name, time.Since(started))

			return result
		}
	}
}
