package domain

import "time"

// SalesLine representa uma linha de venda de um produto dentro de uma versão
type SalesLine struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Value retorna o valor total da linha
func (l SalesLine) Value() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// UserSales representa uma versão de vendas de um usuário em um período.
// Apenas versões com IsFinal = true são consideradas nos relatórios de
// atingimento; as demais são rascunhos editáveis.
type UserSales struct {
	ID          string      `json:"id"`
	UserID      int         `json:"user_id"`
	BusinessIDs []string    `json:"business_ids"`
	VersionName string      `json:"version_name"`
	SalesData   []SalesLine `json:"sales_data"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	IsFinal     bool        `json:"is_final"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
