package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-day-keeper/internal/app"
	"github.com/MKhiriev/go-day-keeper/models"
)

type journalTab int

const (
	tabFeed journalTab = iota
	tabStats
	tabCalendar
	tabSettings
)

var journalTabTitles = []string{"Feed", "Stats", "Calendar", "Settings"}

const feedLimit = 50

type journalModel struct {
	tab journalTab

	entries   []models.Entry
	idx       int
	loading   bool
	todayOnly bool

	adding     bool
	titleInput textinput.Model
	noteArea   textarea.Model
	addFocus   int
	saving     bool

	confirmDelete bool

	stats       models.JournalStats
	statsLoaded bool

	calendarMonth  time.Time
	calendarCounts map[string]int
	calendarLoaded bool

	nameInput   textinput.Model
	editingName bool
}

func newJournalModel() journalModel {
	title := textinput.New()
	title.Placeholder = "What happened today?"
	title.Width = 40
	title.CharLimit = 120

	note := textarea.New()
	note.Placeholder = "Details (optional)"
	note.SetWidth(48)
	note.SetHeight(4)

	name := textinput.New()
	name.Width = 40
	name.CharLimit = 60

	now := time.Now().UTC()
	return journalModel{
		loading:       true,
		titleInput:    title,
		noteArea:      note,
		nameInput:     name,
		calendarMonth: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
}

func (j *journalModel) startAdd() {
	j.adding = true
	j.addFocus = 0
	j.titleInput.SetValue("")
	j.noteArea.SetValue("")
	j.titleInput.Focus()
	j.noteArea.Blur()
}

func (j *journalModel) resetAdd() {
	j.adding = false
	j.saving = false
	j.titleInput.Blur()
	j.noteArea.Blur()
}

func (j *journalModel) currentEntry() (models.Entry, bool) {
	if j.idx < 0 || j.idx >= len(j.entries) {
		return models.Entry{}, false
	}
	return j.entries[j.idx], true
}

// ── Update: journal msgs ─────────────────────────────────────────────────────

func (m appModel) updateJournalMsg(msg tea.Msg) (appModel, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.journal.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil, true
		}
		m.errMsg = ""
		m.journal.entries = msg.entries
		if m.journal.idx >= len(m.journal.entries) {
			m.journal.idx = len(m.journal.entries) - 1
		}
		if m.journal.idx < 0 {
			m.journal.idx = 0
		}
		return m, nil, true
	case entrySavedMsg:
		m.journal.saving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil, true
		}
		m.journal.resetAdd()
		m.status = app.MsgEntrySaved
		m.errMsg = ""
		m.journal.loading = true
		m.journal.statsLoaded = false
		m.journal.calendarLoaded = false
		return m, m.cmdLoadEntries(), true
	case entryDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil, true
		}
		m.status = app.MsgEntryDeleted
		m.errMsg = ""
		m.journal.loading = true
		m.journal.statsLoaded = false
		m.journal.calendarLoaded = false
		return m, m.cmdLoadEntries(), true
	case statsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil, true
		}
		m.journal.stats = msg.stats
		m.journal.statsLoaded = true
		return m, nil, true
	case calendarLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil, true
		}
		// A stale month can arrive after quick navigation; ignore it.
		if msg.month != m.journal.calendarMonth.Format("2006-01") {
			return m, nil, true
		}
		counts := make(map[string]int, len(msg.counts))
		for _, c := range msg.counts {
			counts[c.Day] = c.Count
		}
		m.journal.calendarCounts = counts
		m.journal.calendarLoaded = true
		return m, nil, true
	}

	return m, nil, false
}

// ── Update: journal keys ─────────────────────────────────────────────────────

func (m appModel) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.journal.adding {
		return m.updateJournalAdd(msg)
	}
	if m.journal.editingName {
		return m.updateJournalName(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.journal.confirmDelete {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.journal.confirmDelete = false
			entry, ok := m.journal.currentEntry()
			if !ok {
				return m, nil
			}
			return m, m.cmdDeleteEntry(entry.ID)
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.journal.confirmDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.tab):
		m.journal.tab = (m.journal.tab + 1) % journalTab(len(journalTabTitles))
		return m, m.cmdForTab()
	case key.Matches(keyMsg, keys.backtab):
		m.journal.tab = (m.journal.tab + journalTab(len(journalTabTitles)) - 1) % journalTab(len(journalTabTitles))
		return m, m.cmdForTab()
	}
	switch keyMsg.String() {
	case "1", "2", "3", "4":
		m.journal.tab = journalTab(keyMsg.String()[0] - '1')
		return m, m.cmdForTab()
	}

	switch m.journal.tab {
	case tabFeed:
		return m.updateJournalFeed(keyMsg)
	case tabCalendar:
		return m.updateJournalCalendar(keyMsg)
	case tabSettings:
		return m.updateJournalSettings(keyMsg)
	}

	return m, nil
}

// cmdForTab loads whatever the freshly opened tab still misses.
func (m appModel) cmdForTab() tea.Cmd {
	switch m.journal.tab {
	case tabStats:
		if !m.journal.statsLoaded {
			return m.cmdLoadStats()
		}
	case tabCalendar:
		if !m.journal.calendarLoaded {
			return m.cmdLoadCalendar(m.journal.calendarMonth)
		}
	}
	return nil
}

func (m appModel) updateJournalFeed(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.journal.idx > 0 {
			m.journal.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.journal.idx < len(m.journal.entries)-1 {
			m.journal.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.status = ""
		m.errMsg = ""
		m.journal.startAdd()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.journal.currentEntry(); !ok {
			m.status = "No entries yet"
			return m, nil
		}
		m.journal.confirmDelete = true
	case key.Matches(keyMsg, keys.today):
		m.journal.todayOnly = !m.journal.todayOnly
		m.journal.loading = true
		m.status = ""
		return m, m.cmdLoadEntries()
	}
	return m, nil
}

func (m appModel) updateJournalAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.journal.resetAdd()
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			if m.journal.addFocus == 0 {
				m.journal.addFocus = 1
				m.journal.titleInput.Blur()
				m.journal.noteArea.Focus()
			} else {
				m.journal.addFocus = 0
				m.journal.noteArea.Blur()
				m.journal.titleInput.Focus()
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			// Enter in the note area starts a new line instead of saving.
			if m.journal.addFocus == 0 {
				return m.submitEntry()
			}
		case key.Matches(keyMsg, keys.save):
			return m.submitEntry()
		}
	}

	var cmd tea.Cmd
	if m.journal.addFocus == 0 {
		m.journal.titleInput, cmd = m.journal.titleInput.Update(msg)
	} else {
		m.journal.noteArea, cmd = m.journal.noteArea.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitEntry() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.journal.titleInput.Value()) == "" {
		m.errMsg = app.MsgEmptyEntryTitle
		return m, nil
	}
	if m.journal.saving {
		return m, nil
	}
	m.journal.saving = true
	return m, m.cmdSaveEntry(m.journal.titleInput.Value(), m.journal.noteArea.Value())
}

func (m appModel) updateJournalCalendar(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.left):
		m.journal.calendarMonth = m.journal.calendarMonth.AddDate(0, -1, 0)
		m.journal.calendarLoaded = false
		return m, m.cmdLoadCalendar(m.journal.calendarMonth)
	case key.Matches(keyMsg, keys.right):
		m.journal.calendarMonth = m.journal.calendarMonth.AddDate(0, 1, 0)
		m.journal.calendarLoaded = false
		return m, m.cmdLoadCalendar(m.journal.calendarMonth)
	}
	return m, nil
}

func (m appModel) updateJournalSettings(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.dark):
		return m, m.cmdSetDarkMode(!m.prefs.DarkMode)
	case key.Matches(keyMsg, keys.edit):
		m.journal.editingName = true
		m.journal.nameInput.SetValue(m.prefs.DisplayName)
		m.journal.nameInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.replay):
		return m, m.cmdResetOnboarding()
	}
	return m, nil
}

func (m appModel) updateJournalName(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.journal.editingName = false
			m.journal.nameInput.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.journal.editingName = false
			m.journal.nameInput.Blur()
			return m, m.cmdSetDisplayName(m.journal.nameInput.Value())
		}
	}

	var cmd tea.Cmd
	m.journal.nameInput, cmd = m.journal.nameInput.Update(msg)
	return m, cmd
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Entries

	if m.journal.todayOnly {
		day := time.Now().UTC().Format(models.DayFormat)
		return func() tea.Msg {
			entries, err := svc.ListByDay(ctx, day)
			return entriesLoadedMsg{entries: entries, err: err}
		}
	}

	return func() tea.Msg {
		entries, err := svc.List(ctx, feedLimit)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdSaveEntry(title, note string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Entries

	return func() tea.Msg {
		_, err := svc.Create(ctx, "", title, note)
		return entrySavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteEntry(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Entries

	return func() tea.Msg {
		return entryDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdLoadStats() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Entries

	return func() tea.Msg {
		stats, err := svc.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m appModel) cmdLoadCalendar(month time.Time) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Entries

	from := month.Format(models.DayFormat)
	to := month.AddDate(0, 1, -1).Format(models.DayFormat)
	tag := month.Format("2006-01")

	return func() tea.Msg {
		counts, err := svc.DayCounts(ctx, from, to)
		return calendarLoadedMsg{month: tag, counts: counts, err: err}
	}
}

// ── Views ────────────────────────────────────────────────────────────────────

func (m appModel) viewJournal() string {
	if m.journal.adding {
		return m.viewJournalAdd()
	}

	var body string
	switch m.journal.tab {
	case tabFeed:
		body = m.viewJournalFeed()
	case tabStats:
		body = m.viewJournalStats()
	case tabCalendar:
		body = m.viewJournalCalendar()
	case tabSettings:
		body = m.viewJournalSettings()
	}

	out := m.viewTabStrip() + "\n\n"
	if m.errMsg != "" {
		out += m.pal.errorText().Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += m.pal.statusText().Render(m.status) + "\n"
	}
	if m.errMsg != "" || m.status != "" {
		out += "\n"
	}
	out += body

	return renderPage(m.journalTitle(), strings.TrimRight(out, "\n"), m.journalHotKeys())
}

func (m appModel) journalTitle() string {
	if m.prefs.DisplayName != "" {
		return "DAYKEEPER · " + strings.ToUpper(m.prefs.DisplayName)
	}
	return "DAYKEEPER"
}

func (m appModel) viewTabStrip() string {
	parts := make([]string, 0, len(journalTabTitles))
	for i, title := range journalTabTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if journalTab(i) == m.journal.tab {
			parts = append(parts, m.pal.activeTab().Render(label))
		} else {
			parts = append(parts, m.pal.inactiveTab().Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func (m appModel) journalHotKeys() string {
	switch m.journal.tab {
	case tabFeed:
		return "tab/1-4: tabs │ n: new entry │ t: today │ ctrl+d: delete │ ↑/↓: navigate"
	case tabCalendar:
		return "tab/1-4: tabs │ ←/→: month"
	case tabSettings:
		return "tab/1-4: tabs │ d: dark mode │ e: name │ o: replay intro"
	default:
		return "tab/1-4: tabs"
	}
}

func (m appModel) viewJournalFeed() string {
	if m.journal.loading {
		return "Loading entries..."
	}
	if m.journal.confirmDelete {
		entry, ok := m.journal.currentEntry()
		if ok {
			return fmt.Sprintf("Delete %q? (y/n)", fitText(entry.Title, 40))
		}
	}
	if len(m.journal.entries) == 0 {
		if m.journal.todayOnly {
			return "Nothing for today yet. Press n to write it down."
		}
		return "No entries yet. Press n to write the first one."
	}

	out := ""
	if m.journal.todayOnly {
		out += m.pal.statusText().Render("Today only") + "\n\n"
	}
	out += "Day        │ Title                        │ Note\n"
	out += "───────────┼──────────────────────────────┼──────────────────────\n"
	for i, entry := range m.journal.entries {
		cursor := " "
		if i == m.journal.idx {
			cursor = ">"
		}
		out += fmt.Sprintf(
			"%s %s │ %-28s │ %s\n",
			cursor,
			entry.Day,
			fitText(entry.Title, 28),
			fitText(valueOrDash(entry.Note), 22),
		)
	}
	return out
}

func (m appModel) viewJournalStats() string {
	if !m.journal.statsLoaded {
		return "Crunching numbers..."
	}

	s := m.journal.stats
	out := fmt.Sprintf("Entries total   : %d\n", s.TotalEntries)
	out += fmt.Sprintf("Active days     : %d\n", s.ActiveDays)
	out += fmt.Sprintf("Last 7 days     : %d\n", s.Last7Days)
	out += fmt.Sprintf("Current streak  : %d", s.CurrentStreak)
	if s.CurrentStreak > 0 {
		out += " 🔥"
	}
	return out + "\n"
}

func (m appModel) viewJournalCalendar() string {
	if !m.journal.calendarLoaded {
		return "Loading calendar..."
	}

	month := m.journal.calendarMonth
	out := titleStyle.Render(month.Format("January 2006")) + "\n\n"
	out += "Mo Tu We Th Fr Sa Su\n"

	// Monday-first column of the 1st of the month.
	offset := (int(month.Weekday()) + 6) % 7
	out += strings.Repeat("   ", offset)

	daysInMonth := month.AddDate(0, 1, -1).Day()
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
		cell := fmt.Sprintf("%2d", day)
		if m.journal.calendarCounts[date.Format(models.DayFormat)] > 0 {
			cell = m.pal.statusText().Render(cell)
		} else {
			cell = m.pal.inactiveTab().Render(cell)
		}
		out += cell + " "
		col++
		if col%7 == 0 {
			out = strings.TrimRight(out, " ") + "\n"
		}
	}
	out = strings.TrimRight(out, " \n") + "\n\n"
	out += helpStyle.Render("highlighted days have entries")
	return out
}

func (m appModel) viewJournalSettings() string {
	darkLabel := "off"
	if m.prefs.DarkMode {
		darkLabel = "on"
	}

	out := fmt.Sprintf("Dark mode     : %s\n", darkLabel)
	if m.journal.editingName {
		out += "Display name  : [ " + m.journal.nameInput.View() + " ]\n"
	} else {
		out += fmt.Sprintf("Display name  : %s\n", valueOrDash(m.prefs.DisplayName))
	}
	out += fmt.Sprintf("Version       : %s\n", m.version)
	return out
}

func (m appModel) viewJournalAdd() string {
	out := "New entry for " + time.Now().UTC().Format(models.DayFormat) + "\n\n"
	out += "Title : [ " + m.journal.titleInput.View() + " ]\n\n"
	out += "Note  :\n" + m.journal.noteArea.View() + "\n"
	if m.journal.saving {
		out += "\nSaving...\n"
	}
	if m.errMsg != "" {
		out += "\n" + m.pal.errorText().Render("Error: "+m.errMsg) + "\n"
	}
	return renderPage("DAYKEEPER · NEW ENTRY", strings.TrimRight(out, "\n"), "enter/ctrl+s: save │ tab: switch field │ esc: cancel")
}
