package domain

import "time"

// Product representa um produto de um negócio. Produtos são dados de
// referência imutáveis para vendas e metas.
type Product struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	Name         string    `json:"name"`
	Nickname     *string   `json:"nickname,omitempty"`
	CostPrice    float64   `json:"cost_price"`
	RetailPrice  float64   `json:"retail_price"`
	SellingPrice float64   `json:"selling_price"`
	Currency     Currency  `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName retorna o apelido do produto quando definido, senão o nome
func (p *Product) DisplayName() string {
	if p.Nickname != nil && *p.Nickname != "" {
		return *p.Nickname
	}
	return p.Name
}
