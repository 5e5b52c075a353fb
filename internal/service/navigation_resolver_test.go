// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-day-keeper/internal/app"
	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/MKhiriev/go-day-keeper/internal/mock"
	"github.com/MKhiriev/go-day-keeper/models"
)

// newTestResolver — хелпер для создания резолвера на моках адаптера
func newTestResolver(t *testing.T, ctrl *gomock.Controller) (NavigationResolver, *mock.MockConfigFetcher, *mock.MockDestinationProber) {
	t.Helper()
	mockFetcher := mock.NewMockConfigFetcher(ctrl)
	mockProber := mock.NewMockDestinationProber(ctrl)
	resolver := NewNavigationResolver(mockFetcher, mockProber, logger.Nop())
	return resolver, mockFetcher, mockProber
}

// nextState reads one update or fails the test after a timeout.
func nextState(t *testing.T, updates <-chan models.NavigationState) models.NavigationState {
	t.Helper()
	select {
	case state := <-updates:
		return state
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a navigation state update")
		return models.NavigationState{}
	}
}

// ── BeginLoad ────────────────────────────────────────────────────────────────

func TestNavigationResolver_BeginLoad_EntersInitialScreenImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, _ := newTestResolver(t, ctrl)
	ctx := context.Background()

	release := make(chan struct{})
	mockFetcher.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) models.FetchOutcome {
		<-release
		return models.NewCompletedOutcome("")
	})

	resolver.BeginLoad(ctx)

	// The initial screen shows before the fetch returns anything.
	assert.Equal(t, models.NavigationInitialScreen, resolver.State().Kind)

	close(release)
	resolver.Wait()
	assert.Equal(t, models.NavigationPrimaryInterface, resolver.State().Kind)
}

func TestNavigationResolver_CompletedWithoutDestination_ShowsJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, _ := newTestResolver(t, ctrl)

	mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewCompletedOutcome(""))

	resolver.BeginLoad(context.Background())
	resolver.Wait()

	state := resolver.State()
	assert.Equal(t, models.NavigationPrimaryInterface, state.Kind)
	assert.Empty(t, state.Destination)
}

// ── Destination handling ─────────────────────────────────────────────────────

func TestNavigationResolver_ReachableDestination_ShowsBrowser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, mockProber := newTestResolver(t, ctrl)
	destination := "https://events.daykeeper.io/launch"

	mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewCompletedOutcome(destination))
	mockProber.EXPECT().Probe(gomock.Any(), destination).Return(nil)

	resolver.BeginLoad(context.Background())
	resolver.Wait()

	state := resolver.State()
	require.Equal(t, models.NavigationBrowserContent, state.Kind)
	assert.Equal(t, destination, state.Destination)
}

func TestNavigationResolver_UnreachableDestination_FallsBackToJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, mockProber := newTestResolver(t, ctrl)
	destination := "https://events.daykeeper.io/launch"

	mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewCompletedOutcome(destination))
	mockProber.EXPECT().Probe(gomock.Any(), destination).Return(assert.AnError)

	resolver.BeginLoad(context.Background())
	resolver.Wait()

	// An unreachable destination degrades to the journal, never to an error.
	state := resolver.State()
	assert.Equal(t, models.NavigationPrimaryInterface, state.Kind)
	assert.NotEqual(t, models.NavigationFailureMessage, state.Kind)
	assert.Empty(t, state.Message)
}

func TestNavigationResolver_MalformedDestination_FallsBackToJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No probe expectation: an unparsable destination never reaches the prober.
	resolver, mockFetcher, _ := newTestResolver(t, ctrl)

	mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewCompletedOutcome("not a url"))

	resolver.BeginLoad(context.Background())
	resolver.Wait()

	assert.Equal(t, models.NavigationPrimaryInterface, resolver.State().Kind)
}

// ── Failures ─────────────────────────────────────────────────────────────────

func TestNavigationResolver_RateLimited_ShowsTemporarilyUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, _ := newTestResolver(t, ctrl)

	mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewRateLimitedOutcome())

	resolver.BeginLoad(context.Background())
	resolver.Wait()

	state := resolver.State()
	require.Equal(t, models.NavigationFailureMessage, state.Kind)
	assert.Equal(t, app.MsgGateBusy, state.Message)
}

func TestNavigationResolver_FetchFailure_ShowsCauseMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, _ := newTestResolver(t, ctrl)
	cause := models.NewErrorDetail(models.ErrorDomainHTTP, 503, "unexpected HTTP status 503")

	mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewFailedOutcome(cause))

	resolver.BeginLoad(context.Background())
	resolver.Wait()

	state := resolver.State()
	require.Equal(t, models.NavigationFailureMessage, state.Kind)
	assert.Equal(t, cause.Message, state.Message)
}

func TestNavigationResolver_Retry_RunsFullFlowAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, _ := newTestResolver(t, ctrl)
	ctx := context.Background()
	cause := models.NewErrorDetail(models.ErrorDomainTransport, models.NonHTTPCode, "connection refused")

	gomock.InOrder(
		mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewFailedOutcome(cause)),
		mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewCompletedOutcome("")),
	)

	resolver.BeginLoad(ctx)
	resolver.Wait()
	require.Equal(t, models.NavigationFailureMessage, resolver.State().Kind)

	resolver.Retry(ctx)
	resolver.Wait()

	state := resolver.State()
	assert.Equal(t, models.NavigationPrimaryInterface, state.Kind)
	assert.Empty(t, state.Message)
}

// ── Overlapping cycles ───────────────────────────────────────────────────────

func TestNavigationResolver_OvertakenCycle_ResultDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, _ := newTestResolver(t, ctrl)
	ctx := context.Background()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	staleCause := models.NewErrorDetail(models.ErrorDomainTransport, models.NonHTTPCode, "stale failure")

	gomock.InOrder(
		mockFetcher.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) models.FetchOutcome {
			close(firstStarted)
			<-releaseFirst
			return models.NewFailedOutcome(staleCause)
		}),
		mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewCompletedOutcome("")),
	)

	// First cycle hangs inside the fetch; the retry overtakes it.
	resolver.BeginLoad(ctx)
	<-firstStarted
	resolver.Retry(ctx)

	require.Eventually(t, func() bool {
		return resolver.State().Kind == models.NavigationPrimaryInterface
	}, 2*time.Second, 10*time.Millisecond)

	// Now the slow first cycle finishes with a failure. It must not win.
	close(releaseFirst)
	resolver.Wait()

	state := resolver.State()
	assert.Equal(t, models.NavigationPrimaryInterface, state.Kind)
	assert.Empty(t, state.Message)
	assert.Equal(t, uint64(2), state.Cycle)
}

func TestNavigationResolver_SlowProbeOvertaken_ResultDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, mockProber := newTestResolver(t, ctrl)
	ctx := context.Background()
	destination := "https://events.daykeeper.io/launch"

	probeStarted := make(chan struct{})
	releaseProbe := make(chan struct{})

	gomock.InOrder(
		mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewCompletedOutcome(destination)),
		mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewCompletedOutcome("")),
	)
	mockProber.EXPECT().Probe(gomock.Any(), destination).DoAndReturn(func(context.Context, string) error {
		close(probeStarted)
		<-releaseProbe
		return nil
	})

	resolver.BeginLoad(ctx)
	<-probeStarted
	resolver.Retry(ctx)

	require.Eventually(t, func() bool {
		return resolver.State().Kind == models.NavigationPrimaryInterface
	}, 2*time.Second, 10*time.Millisecond)

	close(releaseProbe)
	resolver.Wait()

	// The browser handoff from the stale cycle never applies.
	state := resolver.State()
	assert.Equal(t, models.NavigationPrimaryInterface, state.Kind)
	assert.Empty(t, state.Destination)
}

// ── Updates ──────────────────────────────────────────────────────────────────

func TestNavigationResolver_Updates_DeliversStatesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, _ := newTestResolver(t, ctrl)
	updates := resolver.Updates()

	mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewRateLimitedOutcome())

	resolver.BeginLoad(context.Background())
	resolver.Wait()

	first := nextState(t, updates)
	assert.Equal(t, models.NavigationInitialScreen, first.Kind)

	second := nextState(t, updates)
	assert.Equal(t, models.NavigationFailureMessage, second.Kind)
	assert.Equal(t, app.MsgGateBusy, second.Message)
}

func TestNavigationResolver_Updates_SlowConsumerGetsLatestState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockFetcher, _ := newTestResolver(t, ctrl)
	ctx := context.Background()

	// Nobody reads the channel while many cycles run; publishing must not
	// block and the newest state must survive the overflow.
	mockFetcher.EXPECT().Fetch(gomock.Any()).Return(models.NewCompletedOutcome("")).Times(10)

	for i := 0; i < 10; i++ {
		resolver.BeginLoad(ctx)
		resolver.Wait()
	}

	var last models.NavigationState
	for {
		select {
		case state := <-resolver.Updates():
			last = state
			continue
		default:
		}
		break
	}

	assert.Equal(t, models.NavigationPrimaryInterface, last.Kind)
	assert.Equal(t, uint64(10), last.Cycle)
}
