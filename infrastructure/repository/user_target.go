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
	userTargetsTable = "user_targets ut"
)

type UserTargetRepository interface {
	GetByUserAndBusiness(userID int, businessID string) (*domain.UserTarget, error)
	ListByUser(userID int) ([]*domain.UserTarget, error)
	SaveOrUpdate(target *domain.UserTarget) error
}

type userTargetRepository struct {
	conn *postgres.Connection
}

func NewUserTargetRepository(conn *postgres.Connection) UserTargetRepository {
	return &userTargetRepository{
		conn: conn,
	}
}

func (r *userTargetRepository) GetByUserAndBusiness(userID int, businessID string) (*domain.UserTarget, error) {
	query, args, err := squirrel.
		Select("ut.id, ut.user_id, ut.business_id, ut.years, ut.created_at, ut.updated_at").
		From(userTargetsTable).
		Where(squirrel.Eq{"ut.user_id": userID, "ut.business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	target, err := r.scanTarget(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta de usuário: %w", err)
	}

	return target, nil
}

func (r *userTargetRepository) ListByUser(userID int) ([]*domain.UserTarget, error) {
	query, args, err := squirrel.
		Select("ut.id, ut.user_id, ut.business_id, ut.years, ut.created_at, ut.updated_at").
		From(userTargetsTable).
		Where(squirrel.Eq{"ut.user_id": userID}).
		OrderBy("ut.business_id ASC").
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

	targets := make([]*domain.UserTarget, 0)
	for rows.Next() {
		target, err := r.scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear metas de usuário: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

func (r *userTargetRepository) SaveOrUpdate(target *domain.UserTarget) error {
	yearsJSON, err := json.Marshal(target.Years)
	if err != nil {
		return fmt.Errorf("erro ao serializar Years para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("user_targets").
		Columns("id", "user_id", "business_id", "years").
		Values(target.ID, target.UserID, target.BusinessID, yearsJSON).
		Suffix(`
			ON CONFLICT (user_id, business_id) DO UPDATE SET
				years = EXCLUDED.years,
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

func (r *userTargetRepository) scanTarget(row rowScanner) (*domain.UserTarget, error) {
	target := &domain.UserTarget{}
	var yearsJSON []byte

	err := row.Scan(
		&target.ID,
		&target.UserID,
		&target.BusinessID,
		&yearsJSON,
		&target.CreatedAt,
		&target.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if yearsJSON != nil {
		if err := json.Unmarshal(yearsJSON, &target.Years); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de years: %w", err)
		}
	}

	return target, nil
}
