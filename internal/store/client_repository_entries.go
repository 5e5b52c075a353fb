package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/MKhiriev/go-day-keeper/models"
)

type entryRepository struct {
	*DB
	logger *logger.Logger
}

func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *entryRepository) SaveEntry(ctx context.Context, entry models.Entry) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveEntry,
		entry.ID,
		entry.Day,
		entry.Title,
		entry.Note,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.SaveEntry").
			Str("id", entry.ID).
			Str("day", entry.Day).
			Msg("failed to execute insert for entry")
		return fmt.Errorf("failed to save entry (id=%s): %w", entry.ID, err)
	}

	return nil
}

func (r *entryRepository) GetEntries(ctx context.Context, day string, limit int) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	builder := sq.
		Select("id", "day", "title", "note", "created_at", "updated_at").
		From("entries").
		OrderBy("day DESC", "created_at DESC")
	if day != "" {
		builder = builder.Where(sq.Eq{"day": day})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.GetEntries").
			Msg("failed to build entries query")
		return nil, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.GetEntries").
			Str("day", day).
			Msg("failed to execute query for getting entries")
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry

	for rows.Next() {
		var entry models.Entry

		scanErr := rows.Scan(
			&entry.ID,
			&entry.Day,
			&entry.Title,
			&entry.Note,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.GetEntries").
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("failed to scan entry row: %w", scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.GetEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating entry rows: %w", rowsErr)
	}

	return entries, nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteEntry, id)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.DeleteEntry").
			Str("id", id).
			Msg("failed to execute delete for entry")
		return fmt.Errorf("failed to delete entry (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.DeleteEntry").
			Str("id", id).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "entryRepository.DeleteEntry").
			Str("id", id).
			Msg("no rows affected during delete: entry not found")
		return fmt.Errorf("%w (id=%s)", ErrEntryNotFound, id)
	}

	return nil
}

func (r *entryRepository) GetDayCounts(ctx context.Context, from, to string) ([]models.DayCount, error) {
	log := logger.FromContext(ctx)

	builder := sq.
		Select("day", "COUNT(*)").
		From("entries").
		GroupBy("day").
		OrderBy("day DESC")
	if from != "" {
		builder = builder.Where(sq.GtOrEq{"day": from})
	}
	if to != "" {
		builder = builder.Where(sq.LtOrEq{"day": to})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.GetDayCounts").
			Msg("failed to build day counts query")
		return nil, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.GetDayCounts").
			Msg("failed to execute query for getting day counts")
		return nil, fmt.Errorf("failed to query day counts: %w", err)
	}
	defer rows.Close()

	var counts []models.DayCount

	for rows.Next() {
		var count models.DayCount

		scanErr := rows.Scan(&count.Day, &count.Count)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.GetDayCounts").
				Msg("failed to scan day count row")
			return nil, fmt.Errorf("failed to scan day count row: %w", scanErr)
		}

		counts = append(counts, count)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.GetDayCounts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating day count rows: %w", rowsErr)
	}

	return counts, nil
}
