/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package federatedtrust

import (
	"context"
	"sync"

	"github.com/trustbloc/wallet-trust/internal/logfields"
)

type resolver interface {
	Resolve(ctx context.Context, req *Request) *Result
}

// Tracker runs resolutions for a single subject, such as one credential offer screen. Starting a new
// resolution cancels the one in flight and the superseded result is never delivered.
type Tracker struct {
	resolver resolver

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// NewTracker returns a new Tracker instance.
func NewTracker(r resolver) *Tracker {
	return &Tracker{resolver: r}
}

// Track starts resolving req in the background and calls apply with the result unless a later call to
// Track, Resolve or Stop has superseded it. apply runs while the tracker is locked and must not call back
// into the tracker.
func (t *Tracker) Track(ctx context.Context, req *Request, apply func(*Result)) {
	runCtx, generation := t.begin(ctx)

	t.wg.Add(1)

	go func() {
		defer t.wg.Done()

		result := t.resolver.Resolve(runCtx, req)

		t.finish(runCtx, generation, func() {
			apply(result)
		})
	}()
}

// Resolve resolves req synchronously. stale is true when another resolution was started on the tracker
// before this one finished; the caller should then discard the result.
func (t *Tracker) Resolve(ctx context.Context, req *Request) (result *Result, stale bool) {
	runCtx, generation := t.begin(ctx)

	result = t.resolver.Resolve(runCtx, req)

	return result, !t.finish(runCtx, generation, nil)
}

// Generation returns the number of resolutions started so far.
func (t *Tracker) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.generation
}

// Wait blocks until every background resolution has returned.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// Stop cancels the resolution in flight, discards its result and waits for background work to return.
func (t *Tracker) Stop() {
	t.mu.Lock()

	t.generation++

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}

	t.mu.Unlock()

	t.wg.Wait()
}

func (t *Tracker) begin(ctx context.Context) (context.Context, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}

	t.generation++

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	return runCtx, t.generation
}

// finish reports whether generation is still current, running deliver before the tracker is unlocked if so.
func (t *Tracker) finish(ctx context.Context, generation uint64, deliver func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if generation != t.generation {
		logger.Debugc(ctx, "Discarding superseded trust resolution", logfields.WithGeneration(generation))

		return false
	}

	if deliver != nil {
		deliver()
	}

	t.cancel()
	t.cancel = nil

	return true
}
