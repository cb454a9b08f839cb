package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

const (
	metricDefinitionsTable = "metric_definitions md"
)

type MetricDefinitionRepository interface {
	GetByID(id string) (*domain.MetricDefinition, error)
	ListByOwner(ownerID string, category domain.MetricCategory) ([]*domain.MetricDefinition, error)
	SaveOrUpdate(definition *domain.MetricDefinition) error
	SaveOrUpdateByOwnerAndType(definition *domain.MetricDefinition) error
	Delete(id string) error
	UpdateCurrentValues(ctx context.Context, updates []*domain.CurrentValueUpdate) error
}

type metricDefinitionRepository struct {
	conn *postgres.Connection
}

func NewMetricDefinitionRepository(conn *postgres.Connection) MetricDefinitionRepository {
	return &metricDefinitionRepository{
		conn: conn,
	}
}

func (r *metricDefinitionRepository) GetByID(id string) (*domain.MetricDefinition, error) {
	query, args, err := squirrel.
		Select("md.id, md.owner_id, md.category, md.type, md.name, md.unit, md.minimum_target, md.standard_target, md.stretch_target, md.current_value, md.created_at, md.updated_at").
		From(metricDefinitionsTable).
		Where(squirrel.Eq{"md.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	definition, err := r.scanDefinitionRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear indicador: %w", err)
	}

	return definition, nil
}

func (r *metricDefinitionRepository) ListByOwner(ownerID string, category domain.MetricCategory) ([]*domain.MetricDefinition, error) {
	queryBuilder := squirrel.
		Select("md.id, md.owner_id, md.category, md.type, md.name, md.unit, md.minimum_target, md.standard_target, md.stretch_target, md.current_value, md.created_at, md.updated_at").
		From(metricDefinitionsTable).
		Where(squirrel.Eq{"md.owner_id": ownerID}).
		OrderBy("md.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if category != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"md.category": category})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	definitions := make([]*domain.MetricDefinition, 0)
	for rows.Next() {
		definition, err := r.scanDefinitionRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear indicadores: %w", err)
		}
		definitions = append(definitions, definition)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return definitions, nil
}

func (r *metricDefinitionRepository) SaveOrUpdate(definition *domain.MetricDefinition) error {
	return r.upsert(definition, `
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			unit = EXCLUDED.unit,
			minimum_target = EXCLUDED.minimum_target,
			standard_target = EXCLUDED.standard_target,
			stretch_target = EXCLUDED.stretch_target,
			updated_at = NOW()
	`)
}

// SaveOrUpdateByOwnerAndType grava um indicador de modelo. O conflito na
// chave (owner_id, type) substitui o registro inteiro, inclusive metas
// customizadas pré-existentes, mas mantém o id do registro vigente; o id
// efetivamente gravado é devolvido em definition.ID
func (r *metricDefinitionRepository) SaveOrUpdateByOwnerAndType(definition *domain.MetricDefinition) error {
	query := squirrel.StatementBuilder.
		Insert("metric_definitions").
		Columns("id", "owner_id", "category", "type", "name", "unit", "minimum_target", "standard_target", "stretch_target", "current_value").
		Values(
			definition.ID,
			definition.OwnerID,
			definition.Category,
			definition.Type,
			definition.Name,
			definition.Unit,
			definition.MinimumTarget,
			definition.StandardTarget,
			definition.StretchTarget,
			definition.CurrentValue,
		).
		Suffix(`
			ON CONFLICT (owner_id, type) DO UPDATE SET
				category = EXCLUDED.category,
				name = EXCLUDED.name,
				unit = EXCLUDED.unit,
				minimum_target = EXCLUDED.minimum_target,
				standard_target = EXCLUDED.standard_target,
				stretch_target = EXCLUDED.stretch_target,
				current_value = EXCLUDED.current_value,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&definition.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *metricDefinitionRepository) upsert(definition *domain.MetricDefinition, conflictSuffix string) error {
	query := squirrel.StatementBuilder.
		Insert("metric_definitions").
		Columns("id", "owner_id", "category", "type", "name", "unit", "minimum_target", "standard_target", "stretch_target", "current_value").
		Values(
			definition.ID,
			definition.OwnerID,
			definition.Category,
			definition.Type,
			definition.Name,
			definition.Unit,
			definition.MinimumTarget,
			definition.StandardTarget,
			definition.StretchTarget,
			definition.CurrentValue,
		).
		Suffix(conflictSuffix).
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

func (r *metricDefinitionRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("metric_definitions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	// Os lançamentos diários do indicador não são removidos aqui: ficam
	// órfãos e deixam de participar dos agregados futuros
	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// UpdateCurrentValues grava o lote de valores consolidados em uma única
// transação: se qualquer registro falhar, nenhuma escrita é mantida
func (r *metricDefinitionRepository) UpdateCurrentValues(ctx context.Context, updates []*domain.CurrentValueUpdate) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, update := range updates {
			query, args, err := squirrel.
				Update("metric_definitions").
				Set("current_value", update.CurrentValue).
				Set("updated_at", update.UpdatedAt.Format(time.RFC3339)).
				Where(squirrel.Eq{"id": update.MetricID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao atualizar valor consolidado do indicador %s: %w", update.MetricID, err)
			}
		}
		return nil
	})
}

func (r *metricDefinitionRepository) scanDefinitionRow(row *sql.Row) (*domain.MetricDefinition, error) {
	definition := &domain.MetricDefinition{}

	err := row.Scan(
		&definition.ID,
		&definition.OwnerID,
		&definition.Category,
		&definition.Type,
		&definition.Name,
		&definition.Unit,
		&definition.MinimumTarget,
		&definition.StandardTarget,
		&definition.StretchTarget,
		&definition.CurrentValue,
		&definition.CreatedAt,
		&definition.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return definition, nil
}

func (r *metricDefinitionRepository) scanDefinitionRows(rows *sql.Rows) (*domain.MetricDefinition, error) {
	definition := &domain.MetricDefinition{}

	err := rows.Scan(
		&definition.ID,
		&definition.OwnerID,
		&definition.Category,
		&definition.Type,
		&definition.Name,
		&definition.Unit,
		&definition.MinimumTarget,
		&definition.StandardTarget,
		&definition.StretchTarget,
		&definition.CurrentValue,
		&definition.CreatedAt,
		&definition.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return definition, nil
}
