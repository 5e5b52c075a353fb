// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"sync"

	"github.com/MKhiriev/go-day-keeper/internal/adapter"
	"github.com/MKhiriev/go-day-keeper/internal/app"
	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/MKhiriev/go-day-keeper/models"
)

// updatesBuffer bounds how many unconsumed state changes are kept. When the
// buffer is full the oldest pending state is dropped, so a slow consumer
// always ends up with the most recent state.
const updatesBuffer = 8

type navigationResolver struct {
	fetcher adapter.ConfigFetcher
	prober  adapter.DestinationProber
	logger  *logger.Logger

	mu           sync.Mutex
	state        models.NavigationState
	currentCycle uint64

	updates chan models.NavigationState
	wg      sync.WaitGroup
}

// NewNavigationResolver creates a NavigationResolver that consults fetcher for
// the launch configuration and prober for destination reachability. The
// resolver starts idle; call BeginLoad to run the first cycle.
func NewNavigationResolver(fetcher adapter.ConfigFetcher, prober adapter.DestinationProber, logger *logger.Logger) NavigationResolver {
	return &navigationResolver{
		fetcher: fetcher,
		prober:  prober,
		logger:  logger,
		state:   models.NewInitialScreenState(),
		updates: make(chan models.NavigationState, updatesBuffer),
	}
}

// BeginLoad implements NavigationResolver. It bumps the cycle counter, moves
// navigation to the initial screen and resolves the rest of the flow in a
// background goroutine. A cycle that is overtaken by a newer BeginLoad keeps
// running, but its result is discarded at apply time.
func (r *navigationResolver) BeginLoad(ctx context.Context) {
	r.mu.Lock()
	r.currentCycle++
	cycle := r.currentCycle
	next := models.NewInitialScreenState()
	next.Cycle = cycle
	r.state = next
	r.wg.Add(1)
	r.mu.Unlock()

	r.publish(next)
	r.logger.Debug().Uint64("cycle", cycle).Msg("load cycle started")

	go func() {
		defer r.wg.Done()
		r.applyIfCurrent(cycle, r.resolve(ctx, cycle))
	}()
}

// Retry implements NavigationResolver.
func (r *navigationResolver) Retry(ctx context.Context) {
	r.BeginLoad(ctx)
}

// State implements NavigationResolver.
func (r *navigationResolver) State() models.NavigationState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Updates implements NavigationResolver.
func (r *navigationResolver) Updates() <-chan models.NavigationState {
	return r.updates
}

// Wait implements NavigationResolver.
func (r *navigationResolver) Wait() {
	r.wg.Wait()
}

// resolve runs the blocking part of one load cycle: fetch the launch
// configuration and translate the outcome into the terminal navigation state.
func (r *navigationResolver) resolve(ctx context.Context, cycle uint64) models.NavigationState {
	outcome := r.fetcher.Fetch(ctx)
	r.logger.Debug().
		Uint64("cycle", cycle).
		Stringer("outcome", outcome.Kind).
		Msg("launch config fetched")

	switch outcome.Kind {
	case models.OutcomeCompleted:
		if !outcome.HasDestination() {
			return models.NewPrimaryInterfaceState()
		}
		return r.resolveDestination(ctx, outcome.Destination)

	case models.OutcomeRateLimited:
		return models.NewFailureMessageState(app.MsgGateBusy)

	case models.OutcomeFailed:
		return models.NewFailureMessageState(outcome.Cause.Message)

	default:
		r.logger.Warn().Stringer("outcome", outcome.Kind).Msg("unexpected fetch outcome, falling back to the journal")
		return models.NewPrimaryInterfaceState()
	}
}

// resolveDestination decides whether a remote destination is worth handing
// the user off to. A destination that does not parse as an absolute URL, or
// does not answer the reachability probe, quietly falls back to the local
// journal. Nothing on this path ever produces a failure message.
func (r *navigationResolver) resolveDestination(ctx context.Context, destination string) models.NavigationState {
	parsed, err := url.Parse(destination)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		r.logger.Debug().Str("destination", destination).Msg("destination is not an absolute URL, falling back to the journal")
		return models.NewPrimaryInterfaceState()
	}

	if err := r.prober.Probe(ctx, destination); err != nil {
		r.logger.Debug().Err(err).Str("destination", destination).Msg("destination probe failed, falling back to the journal")
		return models.NewPrimaryInterfaceState()
	}

	return models.NewBrowserContentState(destination)
}

// applyIfCurrent installs next as the resolver state unless a newer cycle has
// started since; stale results are discarded wholesale. The comparison happens
// here, at apply time, so the check and the write are one critical section.
func (r *navigationResolver) applyIfCurrent(cycle uint64, next models.NavigationState) {
	r.mu.Lock()
	if cycle != r.currentCycle {
		r.mu.Unlock()
		r.logger.Debug().
			Uint64("cycle", cycle).
			Uint64("current_cycle", r.currentCycle).
			Msg("discarding result of an overtaken load cycle")
		return
	}
	next.Cycle = cycle
	r.state = next
	r.mu.Unlock()

	r.publish(next)
	r.logger.Debug().
		Uint64("cycle", cycle).
		Stringer("state", next.Kind).
		Msg("navigation state applied")
}

// publish delivers state on the updates channel without ever blocking the
// resolver: when the buffer is full, the oldest pending state is dropped to
// make room.
func (r *navigationResolver) publish(state models.NavigationState) {
	for {
		select {
		case r.updates <- state:
			return
		default:
		}

		select {
		case <-r.updates:
		default:
		}
	}
}
