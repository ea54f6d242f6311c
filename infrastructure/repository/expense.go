package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mvcarvalho/sales-target-api/infrastructure/database/postgres"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
)

const (
	expensesTable = "expenses e"
)

type ExpenseRepository interface {
	ListByBusinessAndPeriod(businessID string, startDate, endDate time.Time) ([]*domain.Expense, error)
	Create(expense *domain.Expense) error
	Delete(expenseID string) error
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) ListByBusinessAndPeriod(businessID string, startDate, endDate time.Time) ([]*domain.Expense, error) {
	query, args, err := squirrel.
		Select("e.id, e.business_id, e.product_id, e.description, e.amount, e.date, e.created_at, e.updated_at").
		From(expensesTable).
		Where(squirrel.Eq{"e.business_id": businessID}).
		Where(squirrel.GtOrEq{"e.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"e.date": endDate.Format(time.DateOnly)}).
		OrderBy("e.date ASC").
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

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		expense := &domain.Expense{}
		err := rows.Scan(
			&expense.ID,
			&expense.BusinessID,
			&expense.ProductID,
			&expense.Description,
			&expense.Amount,
			&expense.Date,
			&expense.CreatedAt,
			&expense.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}

func (r *expenseRepository) Create(expense *domain.Expense) error {
	query, args, err := squirrel.
		Insert("expenses").
		Columns("id", "business_id", "product_id", "description", "amount", "date").
		Values(
			expense.ID,
			expense.BusinessID,
			expense.ProductID,
			expense.Description,
			expense.Amount,
			expense.Date.Format(time.DateOnly),
		).
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

func (r *expenseRepository) Delete(expenseID string) error {
	query, args, err := squirrel.
		Delete("expenses").
		Where(squirrel.Eq{"id": expenseID}).
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
