package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mvcarvalho/sales-target-api/infrastructure/database/postgres"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
)

const (
	phasingTablesTable = "phasing_tables ft"
)

type PhasingTableRepository interface {
	GetPhasingTable(tableID string) (*domain.PhasingTable, error)
	ListByBusiness(businessID string) ([]*domain.PhasingTable, error)
	SaveOrUpdate(table *domain.PhasingTable) error
	Delete(tableID string) error
}

type phasingTableRepository struct {
	conn *postgres.Connection
}

func NewPhasingTableRepository(conn *postgres.Connection) PhasingTableRepository {
	return &phasingTableRepository{
		conn: conn,
	}
}

func (r *phasingTableRepository) GetPhasingTable(tableID string) (*domain.PhasingTable, error) {
	query, args, err := squirrel.
		Select("ft.id, ft.business_id, ft.name, ft.entries, ft.created_at, ft.updated_at").
		From(phasingTablesTable).
		Where(squirrel.Eq{"ft.id": tableID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	table, err := r.scanTable(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear curva de faseamento: %w", err)
	}

	return table, nil
}

func (r *phasingTableRepository) ListByBusiness(businessID string) ([]*domain.PhasingTable, error) {
	query, args, err := squirrel.
		Select("ft.id, ft.business_id, ft.name, ft.entries, ft.created_at, ft.updated_at").
		From(phasingTablesTable).
		Where(squirrel.Eq{"ft.business_id": businessID}).
		OrderBy("ft.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	tables := make([]*domain.PhasingTable, 0)
	for rows.Next() {
		table, err := r.scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear curvas de faseamento: %w", err)
		}
		tables = append(tables, table)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tables, nil
}

func (r *phasingTableRepository) SaveOrUpdate(table *domain.PhasingTable) error {
	entriesJSON, err := json.Marshal(table.Entries)
	if err != nil {
		return fmt.Errorf("erro ao serializar Entries para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("phasing_tables").
		Columns("id", "business_id", "name", "entries").
		Values(table.ID, table.BusinessID, table.Name, entriesJSON).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				entries = EXCLUDED.entries,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *phasingTableRepository) Delete(tableID string) error {
	query, args, err := squirrel.
		Delete("phasing_tables").
		Where(squirrel.Eq{"id": tableID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *phasingTableRepository) scanTable(row rowScanner) (*domain.PhasingTable, error) {
	table := &domain.PhasingTable{}
	var entriesJSON []byte

	err := row.Scan(
		&table.ID,
		&table.BusinessID,
		&table.Name,
		&entriesJSON,
		&table.CreatedAt,
		&table.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if entriesJSON != nil {
		if err := json.Unmarshal(entriesJSON, &table.Entries); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de entries: %w", err)
		}
	}

	return table, nil
}
