package domain

import "time"

// Expense representa uma despesa de marketing atribuível a um produto de um
// negócio em um período. Alimenta o relatório de lucro.
type Expense struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	ProductID   *string   `json:"product_id,omitempty"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
