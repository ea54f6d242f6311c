package domain

import "time"

// Currency representa a moeda de um negócio ou produto
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name,omitempty"`
}

// Business representa um negócio (tenant) cadastrado na plataforma
type Business struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	LogoURL   *string    `json:"logo_url,omitempty"`
	Currency  Currency   `json:"currency"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BusinessMembership representa o vínculo de um usuário com um negócio.
// Um usuário pode ser dono ou membro de vários negócios ao mesmo tempo.
type BusinessMembership struct {
	UserID     int       `json:"user_id"`
	BusinessID string    `json:"business_id"`
	IsOwner    bool      `json:"is_owner"`
	CreatedAt  time.Time `json:"created_at"`
}
