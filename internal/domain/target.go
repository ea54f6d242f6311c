package domain

import "time"

// TargetType define a periodicidade de uma meta de produto
type TargetType string

const (
	TargetTypeMonthly   TargetType = "monthly"
	TargetTypeQuarterly TargetType = "quarterly"
	TargetTypeYearly    TargetType = "yearly"
	TargetTypeBulk      TargetType = "bulk"
)

// MonthTarget representa a fatia mensal de uma meta de produto
type MonthTarget struct {
	Month        string     `json:"month"` // Nome do mês (ex: "January")
	TargetUnits  int        `json:"target_units"`
	UnitPrice    float64    `json:"unit_price"`
	TargetValue  float64    `json:"target_value"`
	Phased       bool       `json:"phased"`
	PhasingTable *string    `json:"phasing_table_id,omitempty"`
	TargetPhases string     `json:"target_phases"` // Percentual do mês (ex: "25%")
	ValidFrom    *time.Time `json:"valid_from,omitempty"`
	ValidUntil   *time.Time `json:"valid_until,omitempty"`
	AddedIn      time.Time  `json:"added_in"`
	UpdatedIn    *time.Time `json:"updated_in,omitempty"`
}

// YearTarget agrupa as fatias mensais de um mesmo ano calendário
type YearTarget struct {
	Year       int           `json:"year"`
	TotalUnits int           `json:"total_units"`
	TotalValue float64       `json:"total_value"`
	Months     []MonthTarget `json:"months"`
}

// FindMonth retorna a fatia mensal pelo nome do mês, ou nil se não existir
func (y *YearTarget) FindMonth(month string) *MonthTarget {
	for i := range y.Months {
		if y.Months[i].Month == month {
			return &y.Months[i]
		}
	}
	return nil
}

// ProductTarget representa a meta de um produto em um negócio.
// Invariante: no máximo um YearTarget por ano dentro de um (produto, negócio).
type ProductTarget struct {
	ID          string       `json:"id"`
	ProductID   string       `json:"product_id"`
	BusinessID  string       `json:"business_id"`
	Currency    Currency     `json:"currency"`
	YearTargets []YearTarget `json:"year_targets"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// FindYear retorna o agrupamento anual da meta, ou nil se não existir
func (t *ProductTarget) FindYear(year int) *YearTarget {
	for i := range t.YearTargets {
		if t.YearTargets[i].Year == year {
			return &t.YearTargets[i]
		}
	}
	return nil
}

// ProductAllocation representa a alocação de meta de um produto para um usuário
type ProductAllocation struct {
	ProductID   string  `json:"product_id"`
	TargetUnits int     `json:"target_units"`
	TargetValue float64 `json:"target_value"`
}

// YearlyUserTargets agrupa as alocações de um usuário por ano
type YearlyUserTargets struct {
	Year     int                 `json:"year"`
	Products []ProductAllocation `json:"products"`
}

// UserTarget representa a alocação de metas por usuário, distinta da meta
// faseada do produto. As duas são multiplicadas no momento do relatório para
// obter a meta mensal do usuário por produto.
type UserTarget struct {
	ID         string              `json:"id"`
	UserID     int                 `json:"user_id"`
	BusinessID string              `json:"business_id"`
	Years      []YearlyUserTargets `json:"years"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// FindYear retorna as alocações do usuário para um ano, ou nil se não existir
func (t *UserTarget) FindYear(year int) *YearlyUserTargets {
	for i := range t.Years {
		if t.Years[i].Year == year {
			return &t.Years[i]
		}
	}
	return nil
}

// SetProductTargetRequest descreve a criação ou atualização da meta de um
// produto em um negócio
type SetProductTargetRequest struct {
	ProductID      string     `json:"product_id"`
	BusinessID     string     `json:"business_id"`
	TargetUnits    int        `json:"target_units"`
	TargetValue    float64    `json:"target_value"`
	UnitPrice      float64    `json:"unit_price"`
	TargetType     TargetType `json:"target_type"`
	Phased         bool       `json:"phased"`
	PhasingTableID *string    `json:"phasing_table_id,omitempty"`
	StartDate      time.Time  `json:"start_date"`
	Replace        bool       `json:"replace"` // Substitui o balde do ano por inteiro
}

// SetUserTargetRequest descreve a alocação anual de metas de um usuário
type SetUserTargetRequest struct {
	UserID     int                 `json:"user_id"`
	BusinessID string              `json:"business_id"`
	Year       int                 `json:"year"`
	Products   []ProductAllocation `json:"products"`
	Replace    bool                `json:"replace"`
}

// TargetDefinition descreve a entrada para a resolução de metas mensais
type TargetDefinition struct {
	TargetUnits  int
	TargetValue  float64
	UnitPrice    float64
	TargetType   TargetType
	Phased       bool
	PhasingTable *PhasingTable
	StartDate    time.Time
}
