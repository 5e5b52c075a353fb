// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-day-keeper/internal/app"
	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/MKhiriev/go-day-keeper/internal/service"
	"github.com/MKhiriev/go-day-keeper/models"
)

type screen int

const (
	screenSplash screen = iota
	screenFailure
	screenBrowser
	screenOnboarding
	screenJournal
)

// appModel is the root bubbletea model of the DayKeeper client. It owns the
// active screen, delegates rendering to per-screen sub-models and bridges the
// navigation resolver's update channel into the message loop.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	screen     screen
	splash     splashModel
	failure    failureModel
	browser    browserModel
	onboarding onboardingModel
	journal    journalModel

	pal     palette
	prefs   models.Preferences
	version string

	status string
	errMsg string

	quitByUser bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, logger *logger.Logger) appModel {
	return appModel{
		ctx:      ctx,
		services: services,
		logger:   logger,
		screen:   screenSplash,
		splash:   newSplashModel(),
		journal:  newJournalModel(),
		pal:      darkPalette,
		prefs:    models.DefaultPreferences(),
		version:  services.AppInfo.GetAppVersion(ctx),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.splash.spinner.Tick,
		m.cmdBeginLoad(),
		m.waitForState(),
		m.cmdLoadPrefs(),
	)
}

// ── Update ───────────────────────────────────────────────────────────────────

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if key.Matches(msg, keys.quit) && !m.typing() {
			m.quitByUser = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.screen != screenSplash {
			return m, nil
		}
		var cmd tea.Cmd
		m.splash.spinner, cmd = m.splash.spinner.Update(msg)
		return m, cmd

	case navStateMsg:
		next, cmd := m.applyNavState(msg.state)
		// Re-arm the channel read so the next state is not missed.
		return next, tea.Batch(next.waitForState(), cmd)

	case prefsLoadedMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("loading preferences failed, using defaults")
			return m, nil
		}
		m.prefs = msg.prefs
		m.pal = paletteFor(m.prefs.DarkMode)
		if m.screen == screenOnboarding && m.prefs.OnboardingSeen {
			return m.enterPrimary()
		}
		return m, nil

	case prefsSavedMsg:
		if msg.err != nil {
			if m.screen == screenOnboarding {
				m.onboarding.submitting = false
				m.onboarding.errMsg = msg.err.Error()
				return m, nil
			}
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.prefs = msg.prefs
		m.pal = paletteFor(m.prefs.DarkMode)
		if m.screen == screenOnboarding {
			return m.enterPrimary()
		}
		if m.screen == screenJournal && !m.prefs.OnboardingSeen {
			// Replaying the intro was requested from the settings tab.
			return m.enterPrimary()
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.browser.status = app.MsgClipboardUnavailable
		} else {
			m.browser.status = app.MsgDestinationCopied
		}
		return m, nil
	}

	if next, cmd, handled := m.updateJournalMsg(msg); handled {
		return next, cmd
	}

	switch m.screen {
	case screenFailure:
		return m.updateFailure(msg)
	case screenBrowser:
		return m.updateBrowser(msg)
	case screenOnboarding:
		return m.updateOnboarding(msg)
	case screenJournal:
		return m.updateJournal(msg)
	}

	return m, nil
}

// typing reports whether a text field currently owns the keyboard, so plain
// letters must not trigger hotkeys.
func (m appModel) typing() bool {
	switch m.screen {
	case screenOnboarding:
		return true
	case screenJournal:
		return m.journal.adding || m.journal.editingName
	}
	return false
}

// applyNavState switches the visible screen to match a resolver decision.
func (m appModel) applyNavState(state models.NavigationState) (appModel, tea.Cmd) {
	switch state.Kind {
	case models.NavigationInitialScreen:
		m.screen = screenSplash
		return m, m.splash.spinner.Tick
	case models.NavigationPrimaryInterface:
		return m.enterPrimary()
	case models.NavigationBrowserContent:
		m.screen = screenBrowser
		m.browser = browserModel{destination: state.Destination}
		return m, nil
	case models.NavigationFailureMessage:
		m.screen = screenFailure
		m.failure = failureModel{message: state.Message}
		return m, nil
	}
	return m, nil
}

// enterPrimary opens the journal, detouring through onboarding on first run.
func (m appModel) enterPrimary() (appModel, tea.Cmd) {
	if !m.prefs.OnboardingSeen {
		m.screen = screenOnboarding
		m.onboarding = newOnboardingModel()
		return m, textinput.Blink
	}
	m.screen = screenJournal
	m.journal.loading = true
	return m, m.cmdLoadEntries()
}

func (m appModel) updateFailure(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.retry) {
		return m, m.cmdRetry()
	}
	return m, nil
}

func (m appModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.copy) {
		return m, m.cmdCopyDestination(m.browser.destination)
	}
	return m, nil
}

func (m appModel) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, keys.enter):
			if m.onboarding.submitting {
				return m, nil
			}
			m.onboarding.submitting = true
			m.onboarding.errMsg = ""
			return m, m.cmdCompleteOnboarding(m.onboarding.nameInput.Value())
		case key.Matches(keyMsg, keys.esc):
			// Skipping still marks the intro as seen, just without a name.
			if m.onboarding.submitting {
				return m, nil
			}
			m.onboarding.submitting = true
			m.onboarding.errMsg = ""
			return m, m.cmdCompleteOnboarding("")
		}
	}

	var cmd tea.Cmd
	m.onboarding.nameInput, cmd = m.onboarding.nameInput.Update(msg)
	return m, cmd
}

// ── Commands ─────────────────────────────────────────────────────────────────

// waitForState blocks on the resolver's update channel and surfaces the next
// state as a message. The caller re-arms it after every receipt.
func (m appModel) waitForState() tea.Cmd {
	updates := m.services.Resolver.Updates()

	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return nil
		}
		return navStateMsg{state: state}
	}
}

func (m appModel) cmdBeginLoad() tea.Cmd {
	ctx := m.ctx
	resolver := m.services.Resolver

	return func() tea.Msg {
		resolver.BeginLoad(ctx)
		return nil
	}
}

func (m appModel) cmdRetry() tea.Cmd {
	ctx := m.ctx
	resolver := m.services.Resolver

	return func() tea.Msg {
		resolver.Retry(ctx)
		return nil
	}
}

func (m appModel) cmdLoadPrefs() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Prefs

	return func() tea.Msg {
		prefs, err := svc.Get(ctx)
		return prefsLoadedMsg{prefs: prefs, err: err}
	}
}

func (m appModel) cmdSetDarkMode(dark bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Prefs

	return func() tea.Msg {
		prefs, err := svc.SetDarkMode(ctx, dark)
		return prefsSavedMsg{prefs: prefs, err: err}
	}
}

func (m appModel) cmdSetDisplayName(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Prefs

	return func() tea.Msg {
		prefs, err := svc.SetDisplayName(ctx, name)
		return prefsSavedMsg{prefs: prefs, err: err}
	}
}

func (m appModel) cmdCompleteOnboarding(displayName string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Prefs

	return func() tea.Msg {
		prefs, err := svc.CompleteOnboarding(ctx, displayName)
		return prefsSavedMsg{prefs: prefs, err: err}
	}
}

func (m appModel) cmdResetOnboarding() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Prefs

	return func() tea.Msg {
		prefs, err := svc.ResetOnboarding(ctx)
		return prefsSavedMsg{prefs: prefs, err: err}
	}
}

func (m appModel) cmdCopyDestination(destination string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(destination)}
	}
}

// ── View ─────────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	switch m.screen {
	case screenFailure:
		return appStyle.Render(m.failure.View(m.pal))
	case screenBrowser:
		return appStyle.Render(m.browser.View(m.pal))
	case screenOnboarding:
		return appStyle.Render(m.onboarding.View(m.pal))
	case screenJournal:
		return appStyle.Render(m.viewJournal())
	default:
		return appStyle.Render(m.splash.View())
	}
}

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}
