package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/MKhiriev/go-day-keeper/internal/mock"
	"github.com/MKhiriev/go-day-keeper/internal/service"
	"github.com/MKhiriev/go-day-keeper/models"
)

type tuiMocks struct {
	resolver *mock.MockNavigationResolver
	entries  *mock.MockEntryService
	prefs    *mock.MockPrefsService
	appInfo  *mock.MockAppInfoService

	updates chan models.NavigationState
}

// newTestAppModel — собирает корневую модель на мок-сервисах.
func newTestAppModel(t *testing.T) (appModel, tuiMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := tuiMocks{
		resolver: mock.NewMockNavigationResolver(ctrl),
		entries:  mock.NewMockEntryService(ctrl),
		prefs:    mock.NewMockPrefsService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		updates:  make(chan models.NavigationState, 1),
	}
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3").AnyTimes()

	// Updates возвращает канал только для чтения.
	var readOnly <-chan models.NavigationState = mocks.updates
	mocks.resolver.EXPECT().Updates().Return(readOnly).AnyTimes()

	services := &service.ClientServices{
		Resolver: mocks.resolver,
		Entries:  mocks.entries,
		Prefs:    mocks.prefs,
		AppInfo:  mocks.appInfo,
	}

	return newAppModel(context.Background(), services, logger.Nop()), mocks
}

func apply(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(appModel)
	require.True(t, ok)
	return result, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ── Screen routing ───────────────────────────────────────────────────────────

func TestAppModel_StartsOnSplash(t *testing.T) {
	m, _ := newTestAppModel(t)

	assert.Equal(t, screenSplash, m.screen)
	assert.Contains(t, m.View(), "Checking where to take you")
}

func TestAppModel_FailureState_ShowsMessageAndRetryHint(t *testing.T) {
	m, _ := newTestAppModel(t)

	m, _ = apply(t, m, navStateMsg{state: models.NewFailureMessageState("unexpected HTTP status 503")})

	assert.Equal(t, screenFailure, m.screen)
	assert.Contains(t, m.View(), "unexpected HTTP status 503")
	assert.Contains(t, m.View(), "press r to retry")
}

func TestAppModel_BrowserState_ShowsDestination(t *testing.T) {
	m, _ := newTestAppModel(t)

	m, _ = apply(t, m, navStateMsg{state: models.NewBrowserContentState("https://daily.daykeeper.app/today")})

	assert.Equal(t, screenBrowser, m.screen)
	assert.Contains(t, m.View(), "https://daily.daykeeper.app/today")
}

func TestAppModel_PrimaryState_FirstRun_ShowsOnboarding(t *testing.T) {
	m, _ := newTestAppModel(t)

	// Настройки ещё не загружены, значит онбординг не пройден.
	m, _ = apply(t, m, navStateMsg{state: models.NewPrimaryInterfaceState()})

	assert.Equal(t, screenOnboarding, m.screen)
	assert.Contains(t, m.View(), "Welcome to DayKeeper")
}

func TestAppModel_PrimaryState_OnboardingSeen_ShowsJournal(t *testing.T) {
	m, _ := newTestAppModel(t)

	m, _ = apply(t, m, prefsLoadedMsg{prefs: models.Preferences{DarkMode: true, OnboardingSeen: true}})
	m, cmd := apply(t, m, navStateMsg{state: models.NewPrimaryInterfaceState()})

	assert.Equal(t, screenJournal, m.screen)
	assert.True(t, m.journal.loading)
	assert.NotNil(t, cmd)
}

func TestAppModel_InitialScreenState_ReturnsToSplash(t *testing.T) {
	m, _ := newTestAppModel(t)

	m, _ = apply(t, m, navStateMsg{state: models.NewFailureMessageState("boom")})
	m, _ = apply(t, m, navStateMsg{state: models.NewInitialScreenState()})

	assert.Equal(t, screenSplash, m.screen)
}

// ── Keys ─────────────────────────────────────────────────────────────────────

func TestAppModel_RetryKey_CallsResolver(t *testing.T) {
	m, mocks := newTestAppModel(t)
	mocks.resolver.EXPECT().Retry(gomock.Any())

	m, _ = apply(t, m, navStateMsg{state: models.NewFailureMessageState("boom")})
	_, cmd := apply(t, m, runeKey('r'))

	require.NotNil(t, cmd)
	cmd()
}

func TestAppModel_QuitKey_MarksUserQuit(t *testing.T) {
	m, _ := newTestAppModel(t)

	m, cmd := apply(t, m, runeKey('q'))

	assert.True(t, m.quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_QuitKey_IgnoredWhileTyping(t *testing.T) {
	m, _ := newTestAppModel(t)

	m, _ = apply(t, m, navStateMsg{state: models.NewPrimaryInterfaceState()})
	require.Equal(t, screenOnboarding, m.screen)

	// Буква q в поле имени не закрывает программу.
	m, _ = apply(t, m, runeKey('q'))

	assert.False(t, m.quitByUser)
	assert.Equal(t, "q", m.onboarding.nameInput.Value())
}

// ── Prefs and onboarding ─────────────────────────────────────────────────────

func TestAppModel_PrefsLoaded_SwitchesPalette(t *testing.T) {
	m, _ := newTestAppModel(t)

	m, _ = apply(t, m, prefsLoadedMsg{prefs: models.Preferences{DarkMode: false, OnboardingSeen: true}})

	assert.Equal(t, lightPalette, m.pal)
}

func TestAppModel_OnboardingSubmit_CompletesAndOpensJournal(t *testing.T) {
	m, mocks := newTestAppModel(t)
	saved := models.Preferences{DarkMode: true, OnboardingSeen: true, DisplayName: "Rasul"}
	mocks.prefs.EXPECT().CompleteOnboarding(gomock.Any(), "Rasul").Return(saved, nil)

	m, _ = apply(t, m, navStateMsg{state: models.NewPrimaryInterfaceState()})
	require.Equal(t, screenOnboarding, m.screen)

	m.onboarding.nameInput.SetValue("Rasul")
	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = apply(t, m, cmd())

	assert.Equal(t, screenJournal, m.screen)
	assert.Equal(t, "Rasul", m.prefs.DisplayName)
}

// ── Resolver bridge ──────────────────────────────────────────────────────────

func TestAppModel_WaitForState_DeliversResolverUpdates(t *testing.T) {
	m, mocks := newTestAppModel(t)

	cmd := m.waitForState()
	mocks.updates <- models.NewFailureMessageState("boom")

	msg := cmd()
	state, ok := msg.(navStateMsg)
	require.True(t, ok)
	assert.Equal(t, models.NavigationFailureMessage, state.state.Kind)
}

// ── Journal messages ─────────────────────────────────────────────────────────

func TestAppModel_EntriesLoaded_FillsFeed(t *testing.T) {
	m, _ := newTestAppModel(t)
	m.screen = screenJournal

	entries := []models.Entry{
		{ID: "1", Day: "2026-01-15", Title: "first"},
		{ID: "2", Day: "2026-01-14", Title: "second"},
	}
	m, _ = apply(t, m, entriesLoadedMsg{entries: entries})

	assert.False(t, m.journal.loading)
	assert.Contains(t, m.View(), "first")
	assert.Contains(t, m.View(), "second")
}

func TestAppModel_DeleteFlow_AsksForConfirmation(t *testing.T) {
	m, mocks := newTestAppModel(t)
	m.screen = screenJournal
	m, _ = apply(t, m, entriesLoadedMsg{entries: []models.Entry{{ID: "abc", Day: "2026-01-15", Title: "doomed"}}})

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.True(t, m.journal.confirmDelete)
	assert.Contains(t, m.View(), "Delete")

	mocks.entries.EXPECT().Delete(gomock.Any(), "abc").Return(nil)
	m, cmd := apply(t, m, runeKey('y'))
	require.NotNil(t, cmd)

	m, _ = apply(t, m, cmd())
	assert.Equal(t, "entry deleted", m.status)
}
