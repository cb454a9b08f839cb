package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database/postgres"
)

const (
	ownersTable = "owners o"
)

// OwnerDirectory resolve responsáveis por indicadores a partir da tabela de
// cadastro, no lugar de listas fixas no código
type OwnerDirectory interface {
	GetOwnerName(ownerID string) (string, error)
	ListOwnerIDs() ([]string, error)
}

type ownerDirectory struct {
	conn *postgres.Connection
}

func NewOwnerDirectory(conn *postgres.Connection) OwnerDirectory {
	return &ownerDirectory{
		conn: conn,
	}
}

// GetOwnerName retorna o nome do responsável ou vazio quando não cadastrado
func (r *ownerDirectory) GetOwnerName(ownerID string) (string, error) {
	query, args, err := squirrel.
		Select("o.name").
		From(ownersTable).
		Where(squirrel.Eq{"o.id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var name string
	if err := r.conn.QueryRow(query, args...).Scan(&name); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao buscar responsável: %w", err)
	}

	return name, nil
}

func (r *ownerDirectory) ListOwnerIDs() ([]string, error) {
	query, args, err := squirrel.
		Select("o.id").
		From(ownersTable).
		OrderBy("o.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	ownerIDs := make([]string, 0)
	for rows.Next() {
		var ownerID string
		if err := rows.Scan(&ownerID); err != nil {
			return nil, fmt.Errorf("erro ao escanear responsáveis: %w", err)
		}
		ownerIDs = append(ownerIDs, ownerID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ownerIDs, nil
}
