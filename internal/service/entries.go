package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-day-keeper/internal/store"
	"github.com/MKhiriev/go-day-keeper/models"
)

type entryService struct {
	repository store.EntryRepository

	// now is swappable in tests so streak math has a fixed "today".
	now func() time.Time
}

// NewEntryService creates an EntryService backed by repository.
func NewEntryService(repository store.EntryRepository) EntryService {
	return &entryService{repository: repository, now: time.Now}
}

func (s *entryService) Create(ctx context.Context, day, title, note string) (models.Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Entry{}, ErrEmptyTitle
	}

	if day == "" {
		day = s.today()
	} else if _, err := time.Parse(models.DayFormat, day); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	now := s.now().UTC()
	entry := models.Entry{
		ID:        uuid.NewString(),
		Day:       day,
		Title:     title,
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.SaveEntry(ctx, entry); err != nil {
		return models.Entry{}, fmt.Errorf("save entry: %w", err)
	}

	return entry, nil
}

func (s *entryService) List(ctx context.Context, limit int) ([]models.Entry, error) {
	entries, err := s.repository.GetEntries(ctx, "", limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *entryService) ListByDay(ctx context.Context, day string) ([]models.Entry, error) {
	if _, err := time.Parse(models.DayFormat, day); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	entries, err := s.repository.GetEntries(ctx, day, 0)
	if err != nil {
		return nil, fmt.Errorf("list entries for day %s: %w", day, err)
	}
	return entries, nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyEntryID
	}

	if err := s.repository.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("delete entry %s: %w", id, err)
	}
	return nil
}

func (s *entryService) DayCounts(ctx context.Context, from, to string) ([]models.DayCount, error) {
	for _, day := range []string{from, to} {
		if day == "" {
			continue
		}
		if _, err := time.Parse(models.DayFormat, day); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDay, day)
		}
	}

	counts, err := s.repository.GetDayCounts(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get day counts: %w", err)
	}
	return counts, nil
}

func (s *entryService) Stats(ctx context.Context) (models.JournalStats, error) {
	counts, err := s.repository.GetDayCounts(ctx, "", "")
	if err != nil {
		return models.JournalStats{}, fmt.Errorf("get day counts for stats: %w", err)
	}

	byDay := make(map[string]int, len(counts))
	stats := models.JournalStats{ActiveDays: len(counts)}
	for _, c := range counts {
		stats.TotalEntries += c.Count
		byDay[c.Day] = c.Count
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	for offset := 0; offset < 7; offset++ {
		day := today.AddDate(0, 0, -offset).Format(models.DayFormat)
		stats.Last7Days += byDay[day]
	}

	stats.CurrentStreak = currentStreak(byDay, today)

	return stats, nil
}

func (s *entryService) today() string {
	return s.now().UTC().Format(models.DayFormat)
}

// currentStreak counts consecutive days with entries walking backwards from
// today. An empty today does not break the streak as long as yesterday has
// entries; any other gap ends the count.
func currentStreak(byDay map[string]int, today time.Time) int {
	start := today
	if byDay[start.Format(models.DayFormat)] == 0 {
		start = start.AddDate(0, 0, -1)
	}

	streak := 0
	for day := start; byDay[day.Format(models.DayFormat)] > 0; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
