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
	productTargetsTable = "product_targets pt"
)

type ProductTargetRepository interface {
	GetByProductAndBusiness(productID, businessID string) (*domain.ProductTarget, error)
	ListByBusinessIDs(businessIDs []string) ([]*domain.ProductTarget, error)
	SaveOrUpdate(target *domain.ProductTarget) error
	Delete(targetID string) error
}

type productTargetRepository struct {
	conn *postgres.Connection
}

func NewProductTargetRepository(conn *postgres.Connection) ProductTargetRepository {
	return &productTargetRepository{
		conn: conn,
	}
}

func (r *productTargetRepository) GetByProductAndBusiness(productID, businessID string) (*domain.ProductTarget, error) {
	query, args, err := squirrel.
		Select("pt.id, pt.product_id, pt.business_id, pt.currency_code, pt.currency_symbol, pt.currency_name, pt.year_targets, pt.created_at, pt.updated_at").
		From(productTargetsTable).
		Where(squirrel.Eq{"pt.product_id": productID, "pt.business_id": businessID}).
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
		return nil, fmt.Errorf("erro ao escanear meta de produto: %w", err)
	}

	return target, nil
}

func (r *productTargetRepository) ListByBusinessIDs(businessIDs []string) ([]*domain.ProductTarget, error) {
	query, args, err := squirrel.
		Select("pt.id, pt.product_id, pt.business_id, pt.currency_code, pt.currency_symbol, pt.currency_name, pt.year_targets, pt.created_at, pt.updated_at").
		From(productTargetsTable).
		Where(squirrel.Eq{"pt.business_id": businessIDs}).
		OrderBy("pt.product_id ASC").
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

	targets := make([]*domain.ProductTarget, 0)
	for rows.Next() {
		target, err := r.scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear metas de produto: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

func (r *productTargetRepository) SaveOrUpdate(target *domain.ProductTarget) error {
	yearTargetsJSON, err := json.Marshal(target.YearTargets)
	if err != nil {
		return fmt.Errorf("erro ao serializar YearTargets para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("product_targets").
		Columns("id", "product_id", "business_id", "currency_code", "currency_symbol", "currency_name", "year_targets").
		Values(
			target.ID,
			target.ProductID,
			target.BusinessID,
			target.Currency.Code,
			target.Currency.Symbol,
			target.Currency.Name,
			yearTargetsJSON,
		).
		Suffix(`
			ON CONFLICT (product_id, business_id) DO UPDATE SET
				year_targets = EXCLUDED.year_targets,
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

func (r *productTargetRepository) Delete(targetID string) error {
	query, args, err := squirrel.
		Delete("product_targets").
		Where(squirrel.Eq{"id": targetID}).
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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *productTargetRepository) scanTarget(row rowScanner) (*domain.ProductTarget, error) {
	target := &domain.ProductTarget{}
	var yearTargetsJSON []byte

	err := row.Scan(
		&target.ID,
		&target.ProductID,
		&target.BusinessID,
		&target.Currency.Code,
		&target.Currency.Symbol,
		&target.Currency.Name,
		&yearTargetsJSON,
		&target.CreatedAt,
		&target.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if yearTargetsJSON != nil {
		if err := json.Unmarshal(yearTargetsJSON, &target.YearTargets); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de year_targets: %w", err)
		}
	}

	return target, nil
}
