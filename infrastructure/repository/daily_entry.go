package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

const (
	dailyEntriesTable = "daily_entries de"
)

type DailyEntryRepository interface {
	Upsert(entry *domain.DailyEntry) error
	GetByMetricAndRange(metricID string, startDate, endDate time.Time) ([]*domain.DailyEntry, error)
	GetByOwnerAndRange(ownerID string, metricIDs []string, startDate, endDate time.Time) ([]*domain.DailyEntry, error)
}

type dailyEntryRepository struct {
	conn *postgres.Connection
}

func NewDailyEntryRepository(conn *postgres.Connection) DailyEntryRepository {
	return &dailyEntryRepository{
		conn: conn,
	}
}

// Upsert grava um lançamento diário pela chave natural (metric_id, date).
// Um registro existente para a mesma chave é substituído por inteiro, o
// que torna a operação idempotente
func (r *dailyEntryRepository) Upsert(entry *domain.DailyEntry) error {
	query := squirrel.StatementBuilder.
		Insert("daily_entries").
		Columns("metric_id", "owner_id", "date", "actual_value", "is_achieved", "notes").
		Values(
			entry.MetricID,
			entry.OwnerID,
			entry.Date.Format(time.DateOnly),
			entry.ActualValue,
			entry.Achieved,
			entry.Notes,
		).
		Suffix(`
			ON CONFLICT (metric_id, date) DO UPDATE SET
				owner_id = EXCLUDED.owner_id,
				actual_value = EXCLUDED.actual_value,
				is_achieved = EXCLUDED.is_achieved,
				notes = EXCLUDED.notes,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailyEntryRepository) GetByMetricAndRange(metricID string, startDate, endDate time.Time) ([]*domain.DailyEntry, error) {
	query, args, err := squirrel.
		Select("de.metric_id, de.owner_id, de.date, de.actual_value, de.is_achieved, de.notes").
		From(dailyEntriesTable).
		Where(squirrel.Eq{"de.metric_id": metricID}).
		Where(squirrel.GtOrEq{"de.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"de.date": endDate.Format(time.DateOnly)}).
		OrderBy("de.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args...)
}

func (r *dailyEntryRepository) GetByOwnerAndRange(ownerID string, metricIDs []string, startDate, endDate time.Time) ([]*domain.DailyEntry, error) {
	queryBuilder := squirrel.
		Select("de.metric_id, de.owner_id, de.date, de.actual_value, de.is_achieved, de.notes").
		From(dailyEntriesTable).
		Where(squirrel.Eq{"de.owner_id": ownerID}).
		Where(squirrel.GtOrEq{"de.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"de.date": endDate.Format(time.DateOnly)}).
		OrderBy("de.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(metricIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"de.metric_id": metricIDs})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args...)
}

func (r *dailyEntryRepository) queryEntries(query string, args ...interface{}) ([]*domain.DailyEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.DailyEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamentos diários: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *dailyEntryRepository) scanEntry(rows *sql.Rows) (*domain.DailyEntry, error) {
	entry := &domain.DailyEntry{}
	var notes sql.NullString

	err := rows.Scan(
		&entry.MetricID,
		&entry.OwnerID,
		&entry.Date,
		&entry.ActualValue,
		&entry.Achieved,
		&notes,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		entry.Notes = notes.String
	}

	return entry, nil
}
