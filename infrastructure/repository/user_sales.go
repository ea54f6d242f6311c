package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mvcarvalho/sales-target-api/infrastructure/database/postgres"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
)

const (
	userSalesTable = "user_sales us"
)

type UserSalesRepository interface {
	GetByID(salesID string) (*domain.UserSales, error)
	ListByUser(userID int) ([]*domain.UserSales, error)
	// ListFinalByUserAndPeriod retorna versões finais cuja janela está contida
	// no período (startDate e endDate dentro dos limites)
	ListFinalByUserAndPeriod(userID int, startDate, endDate time.Time) ([]*domain.UserSales, error)
	ListFinalByBusinessAndPeriod(businessID string, startDate, endDate time.Time) ([]*domain.UserSales, error)
	Create(sales *domain.UserSales) error
	Update(sales *domain.UserSales) error
	Finalize(salesID string) error
}

type userSalesRepository struct {
	conn *postgres.Connection
}

func NewUserSalesRepository(conn *postgres.Connection) UserSalesRepository {
	return &userSalesRepository{
		conn: conn,
	}
}

const userSalesColumns = "us.id, us.user_id, us.business_ids, us.version_name, us.sales_data, us.start_date, us.end_date, us.is_final, us.created_at, us.updated_at"

func (r *userSalesRepository) GetByID(salesID string) (*domain.UserSales, error) {
	query, args, err := squirrel.
		Select(userSalesColumns).
		From(userSalesTable).
		Where(squirrel.Eq{"us.id": salesID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sales, err := r.scanSales(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear versão de vendas: %w", err)
	}

	return sales, nil
}

func (r *userSalesRepository) ListByUser(userID int) ([]*domain.UserSales, error) {
	query, args, err := squirrel.
		Select(userSalesColumns).
		From(userSalesTable).
		Where(squirrel.Eq{"us.user_id": userID}).
		OrderBy("us.start_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args...)
}

func (r *userSalesRepository) ListFinalByUserAndPeriod(userID int, startDate, endDate time.Time) ([]*domain.UserSales, error) {
	query, args, err := squirrel.
		Select(userSalesColumns).
		From(userSalesTable).
		Where(squirrel.Eq{"us.user_id": userID, "us.is_final": true}).
		Where(squirrel.GtOrEq{"us.start_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"us.end_date": endDate.Format(time.DateOnly)}).
		OrderBy("us.start_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args...)
}

func (r *userSalesRepository) ListFinalByBusinessAndPeriod(businessID string, startDate, endDate time.Time) ([]*domain.UserSales, error) {
	query, args, err := squirrel.
		Select(userSalesColumns).
		From(userSalesTable).
		Where("us.business_ids @> ARRAY[?]::text[]", businessID).
		Where(squirrel.Eq{"us.is_final": true}).
		Where(squirrel.GtOrEq{"us.start_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"us.end_date": endDate.Format(time.DateOnly)}).
		OrderBy("us.start_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args...)
}

func (r *userSalesRepository) querySales(query string, args ...interface{}) ([]*domain.UserSales, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	salesList := make([]*domain.UserSales, 0)
	for rows.Next() {
		sales, err := r.scanSales(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear versões de vendas: %w", err)
		}
		salesList = append(salesList, sales)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return salesList, nil
}

func (r *userSalesRepository) Create(sales *domain.UserSales) error {
	salesDataJSON, err := json.Marshal(sales.SalesData)
	if err != nil {
		return fmt.Errorf("erro ao serializar SalesData para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("user_sales").
		Columns("id", "user_id", "business_ids", "version_name", "sales_data", "start_date", "end_date", "is_final").
		Values(
			sales.ID,
			sales.UserID,
			pq.Array(sales.BusinessIDs),
			sales.VersionName,
			salesDataJSON,
			sales.StartDate.Format(time.DateOnly),
			sales.EndDate.Format(time.DateOnly),
			sales.IsFinal,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// Update atualiza uma versão de vendas ainda em rascunho. Versões finais são
// autoritativas e não podem ser alteradas.
func (r *userSalesRepository) Update(sales *domain.UserSales) error {
	salesDataJSON, err := json.Marshal(sales.SalesData)
	if err != nil {
		return fmt.Errorf("erro ao serializar SalesData para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("user_sales").
		Set("version_name", sales.VersionName).
		Set("sales_data", salesDataJSON).
		Set("start_date", sales.StartDate.Format(time.DateOnly)).
		Set("end_date", sales.EndDate.Format(time.DateOnly)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": sales.ID, "is_final": false}).
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

func (r *userSalesRepository) Finalize(salesID string) error {
	query, args, err := squirrel.
		Update("user_sales").
		Set("is_final", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": salesID}).
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

func (r *userSalesRepository) scanSales(row rowScanner) (*domain.UserSales, error) {
	sales := &domain.UserSales{}
	var salesDataJSON []byte
	var businessIDs pq.StringArray

	err := row.Scan(
		&sales.ID,
		&sales.UserID,
		&businessIDs,
		&sales.VersionName,
		&salesDataJSON,
		&sales.StartDate,
		&sales.EndDate,
		&sales.IsFinal,
		&sales.CreatedAt,
		&sales.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sales.BusinessIDs = businessIDs

	if salesDataJSON != nil {
		if err := json.Unmarshal(salesDataJSON, &sales.SalesData); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de sales_data: %w", err)
		}
	}

	return sales, nil
}
