package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/logger"
)

// FetchFunc loads the value for a request.
type FetchFunc[Req, T any] func(ctx context.Context, req Req) (T, error)

// Slot holds one piece of background-loaded state that a foreground loop
// polls without blocking.
//
// The in-flight flag and the value share one mutex, so a poll never sees
// a cleared flag next to a stale value. At most one load runs per slot.
// Values are replaced wholesale and never mutated after being stored.
type Slot[Req, T any] struct {
	fetch FetchFunc[Req, T]

	mu       sync.Mutex
	inFlight bool
	done     chan struct{}
	loaded   bool
	value    T
	err      error
}

// NewSlot creates an idle slot that loads values with fetch.
func NewSlot[Req, T any](fetch FetchFunc[Req, T]) *Slot[Req, T] {
	return &Slot[Req, T]{fetch: fetch}
}

// Launch starts loading req in the background.
// It returns false without starting anything if a load is already in flight.
func (s *Slot[Req, T]) Launch(ctx context.Context, req Req) bool {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return false
	}
	s.inFlight = true
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	go s.run(ctx, req, done)
	return true
}

// run performs one load. The value is replaced before the flag clears.
func (s *Slot[Req, T]) run(ctx context.Context, req Req, done chan struct{}) {
	value, err := s.fetch(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		logger.Warn("Background load failed: %v", err)
		s.err = err
	} else {
		s.value = value
		s.loaded = true
		s.err = nil
	}
	s.inFlight = false
	close(done)
}

// Poll returns the current state without blocking.
// A slot whose lock is held reports Loading.
func (s *Slot[Req, T]) Poll() domain.LoadStatus[T] {
	if !s.mu.TryLock() {
		return domain.LoadStatus[T]{State: domain.LoadLoading}
	}
	defer s.mu.Unlock()

	if s.inFlight {
		return domain.LoadStatus[T]{State: domain.LoadLoading}
	}
	return domain.LoadStatus[T]{
		State:  domain.LoadReady,
		Value:  s.value,
		Loaded: s.loaded,
		Err:    s.err,
	}
}

// Wait blocks until no load is in flight or ctx is done, then returns the
// slot state.
func (s *Slot[Req, T]) Wait(ctx context.Context) (domain.LoadStatus[T], error) {
	for {
		s.mu.Lock()
		if !s.inFlight {
			status := domain.LoadStatus[T]{
				State:  domain.LoadReady,
				Value:  s.value,
				Loaded: s.loaded,
				Err:    s.err,
			}
			s.mu.Unlock()
			return status, nil
		}
		done := s.done
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return domain.LoadStatus[T]{State: domain.LoadLoading}, ctx.Err()
		case <-done:
		}
	}
}
