package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mvcarvalho/sales-target-api/infrastructure/database/postgres"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
)

const (
	productsTable = "products"
)

type ProductRepository interface {
	GetProduct(productID string) (*domain.Product, error)
	ListByBusiness(businessID string) ([]*domain.Product, error)
	ListByBusinessIDs(businessIDs []string) ([]*domain.Product, error)
	CreateProduct(product *domain.Product) error
	UpdateProduct(product *domain.Product) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

const productColumns = "p.id, p.business_id, p.name, p.nickname, p.cost_price, p.retail_price, p.selling_price, p.currency_code, p.currency_symbol, p.currency_name, p.created_at, p.updated_at"

func (r *productRepository) GetProduct(productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable + " p").
		Where(squirrel.Eq{"p.id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.Product{}
	err = r.conn.QueryRow(query, args...).Scan(
		&product.ID,
		&product.BusinessID,
		&product.Name,
		&product.Nickname,
		&product.CostPrice,
		&product.RetailPrice,
		&product.SellingPrice,
		&product.Currency.Code,
		&product.Currency.Symbol,
		&product.Currency.Name,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListByBusiness(businessID string) ([]*domain.Product, error) {
	return r.ListByBusinessIDs([]string{businessID})
}

func (r *productRepository) ListByBusinessIDs(businessIDs []string) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable + " p").
		Where(squirrel.Eq{"p.business_id": businessIDs}).
		OrderBy("p.name ASC").
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.BusinessID,
			&product.Name,
			&product.Nickname,
			&product.CostPrice,
			&product.RetailPrice,
			&product.SellingPrice,
			&product.Currency.Code,
			&product.Currency.Symbol,
			&product.Currency.Name,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) CreateProduct(product *domain.Product) error {
	query, args, err := squirrel.
		Insert(productsTable).
		Columns("id", "business_id", "name", "nickname", "cost_price", "retail_price", "selling_price", "currency_code", "currency_symbol", "currency_name").
		Values(
			product.ID,
			product.BusinessID,
			product.Name,
			product.Nickname,
			product.CostPrice,
			product.RetailPrice,
			product.SellingPrice,
			product.Currency.Code,
			product.Currency.Symbol,
			product.Currency.Name,
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

func (r *productRepository) UpdateProduct(product *domain.Product) error {
	queryBuilder := squirrel.
		Update(productsTable).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": product.ID})

	if product.Name != "" {
		queryBuilder = queryBuilder.Set("name", product.Name)
	}

	if product.Nickname != nil && *product.Nickname != "" {
		queryBuilder = queryBuilder.Set("nickname", product.Nickname)
	}

	if product.CostPrice != 0 {
		queryBuilder = queryBuilder.Set("cost_price", product.CostPrice)
	}

	if product.RetailPrice != 0 {
		queryBuilder = queryBuilder.Set("retail_price", product.RetailPrice)
	}

	if product.SellingPrice != 0 {
		queryBuilder = queryBuilder.Set("selling_price", product.SellingPrice)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
