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
	businessesTable      = "businesses"
	businessMembersTable = "business_members"
)

type BusinessRepository interface {
	GetBusiness(businessID string) (*domain.Business, error)
	ListBusinessIDsByUser(userID int) ([]string, error)
	ListBusinessesByUser(userID int) ([]*domain.Business, error)
	ListBusinesses() ([]*domain.Business, error)
	ListMembers(businessID string) ([]*domain.BusinessMembership, error)
	CreateBusiness(business *domain.Business) error
	UpdateBusiness(business *domain.Business) error
	AddMember(membership *domain.BusinessMembership) error
	RemoveMember(userID int, businessID string) error
}

type businessRepository struct {
	conn *postgres.Connection
}

func NewBusinessRepository(conn *postgres.Connection) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

func (r *businessRepository) GetBusiness(businessID string) (*domain.Business, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.logo_url, b.currency_code, b.currency_symbol, b.currency_name, b.deleted, b.deleted_at, b.created_at, b.updated_at").
		From(businessesTable + " b").
		Where(squirrel.Eq{"b.id": businessID, "b.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	business := &domain.Business{}
	err = r.conn.QueryRow(query, args...).Scan(
		&business.ID,
		&business.Name,
		&business.LogoURL,
		&business.Currency.Code,
		&business.Currency.Symbol,
		&business.Currency.Name,
		&business.Deleted,
		&business.DeletedAt,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
	}

	return business, nil
}

// ListBusinessIDsByUser retorna os negócios aos quais o usuário pertence,
// como dono ou como membro
func (r *businessRepository) ListBusinessIDsByUser(userID int) ([]string, error) {
	query, args, err := squirrel.
		Select("bm.business_id").
		From(businessMembersTable + " bm").
		Where(squirrel.Eq{"bm.user_id": userID}).
		OrderBy("bm.business_id ASC").
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

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear business_id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func (r *businessRepository) ListBusinessesByUser(userID int) ([]*domain.Business, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.logo_url, b.currency_code, b.currency_symbol, b.currency_name, b.deleted, b.deleted_at, b.created_at, b.updated_at").
		From(businessesTable + " b").
		Join(businessMembersTable + " bm ON bm.business_id = b.id").
		Where(squirrel.Eq{"bm.user_id": userID, "b.deleted": false}).
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryBusinesses(query, args...)
}

func (r *businessRepository) ListBusinesses() ([]*domain.Business, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.logo_url, b.currency_code, b.currency_symbol, b.currency_name, b.deleted, b.deleted_at, b.created_at, b.updated_at").
		From(businessesTable + " b").
		Where(squirrel.Eq{"b.deleted": false}).
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryBusinesses(query, args...)
}

func (r *businessRepository) queryBusinesses(query string, args ...interface{}) ([]*domain.Business, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		business := &domain.Business{}
		err := rows.Scan(
			&business.ID,
			&business.Name,
			&business.LogoURL,
			&business.Currency.Code,
			&business.Currency.Symbol,
			&business.Currency.Name,
			&business.Deleted,
			&business.DeletedAt,
			&business.CreatedAt,
			&business.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return businesses, nil
}

func (r *businessRepository) ListMembers(businessID string) ([]*domain.BusinessMembership, error) {
	query, args, err := squirrel.
		Select("bm.user_id, bm.business_id, bm.is_owner, bm.created_at").
		From(businessMembersTable + " bm").
		Where(squirrel.Eq{"bm.business_id": businessID}).
		OrderBy("bm.user_id ASC").
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

	members := make([]*domain.BusinessMembership, 0)
	for rows.Next() {
		member := &domain.BusinessMembership{}
		err := rows.Scan(&member.UserID, &member.BusinessID, &member.IsOwner, &member.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear membro: %w", err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return members, nil
}

func (r *businessRepository) CreateBusiness(business *domain.Business) error {
	query, args, err := squirrel.
		Insert(businessesTable).
		Columns("id", "name", "logo_url", "currency_code", "currency_symbol", "currency_name").
		Values(
			business.ID,
			business.Name,
			business.LogoURL,
			business.Currency.Code,
			business.Currency.Symbol,
			business.Currency.Name,
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

func (r *businessRepository) UpdateBusiness(business *domain.Business) error {
	queryBuilder := squirrel.
		Update(businessesTable).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": business.ID})

	if business.Name != "" {
		queryBuilder = queryBuilder.Set("name", business.Name)
	}

	if business.LogoURL != nil && *business.LogoURL != "" {
		queryBuilder = queryBuilder.Set("logo_url", business.LogoURL)
	}

	if business.Currency.Code != "" {
		queryBuilder = queryBuilder.
			Set("currency_code", business.Currency.Code).
			Set("currency_symbol", business.Currency.Symbol).
			Set("currency_name", business.Currency.Name)
	}

	if business.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true).Set("deleted_at", business.DeletedAt)
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

func (r *businessRepository) AddMember(membership *domain.BusinessMembership) error {
	query, args, err := squirrel.
		Insert(businessMembersTable).
		Columns("user_id", "business_id", "is_owner").
		Values(membership.UserID, membership.BusinessID, membership.IsOwner).
		Suffix(`
			ON CONFLICT (user_id, business_id) DO UPDATE SET
				is_owner = EXCLUDED.is_owner
		`).
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

func (r *businessRepository) RemoveMember(userID int, businessID string) error {
	query, args, err := squirrel.
		Delete(businessMembersTable).
		Where(squirrel.Eq{"user_id": userID, "business_id": businessID}).
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
