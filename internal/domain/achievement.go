package domain

// ProductAchievement representa o atingimento de meta de um produto:
// vendas realizadas contra a meta do período
type ProductAchievement struct {
	ProductID          string  `json:"product_id"`
	ProductName        string  `json:"product_name"`
	SoldQuantity       int     `json:"sold_quantity"`
	SalesValue         float64 `json:"sales_value"`
	TargetUnits        int     `json:"target_units"`
	TargetValue        float64 `json:"target_value"`
	AchievementPercent float64 `json:"achievement_percent"`
}

// AchievementTotals agrega os valores de um conjunto de atingimentos.
// O percentual agregado é sempre soma-depois-divide, nunca média dos
// percentuais filhos.
type AchievementTotals struct {
	SoldQuantity       int     `json:"sold_quantity"`
	SalesValue         float64 `json:"sales_value"`
	TargetUnits        int     `json:"target_units"`
	TargetValue        float64 `json:"target_value"`
	AchievementPercent float64 `json:"achievement_percent"`
}

// MonthlyAchievementReport representa o relatório mensal de atingimento de
// um usuário: por produto mais os totais
type MonthlyAchievementReport struct {
	UserID         int                  `json:"user_id"`
	BusinessID     string               `json:"business_id"`
	BusinessName   string               `json:"business_name,omitempty"`
	CurrencySymbol string               `json:"currency_symbol,omitempty"`
	Month          string               `json:"month"`
	Year           int                  `json:"year"`
	Products       []ProductAchievement `json:"products"`
	Totals         AchievementTotals    `json:"totals"`
}

// YTDAchievementReport representa o atingimento acumulado de um usuário em um
// intervalo de meses dentro de um ano
type YTDAchievementReport struct {
	UserID         int                  `json:"user_id"`
	BusinessID     string               `json:"business_id"`
	BusinessName   string               `json:"business_name,omitempty"`
	CurrencySymbol string               `json:"currency_symbol,omitempty"`
	Year           int                  `json:"year"`
	Months         []string             `json:"months"`
	Products       []ProductAchievement `json:"products"`
	Totals         AchievementTotals    `json:"totals"`
}

// MemberAchievement representa o atingimento agregado de um membro da equipe
type MemberAchievement struct {
	UserID   int               `json:"user_id"`
	UserName string            `json:"user_name,omitempty"`
	Totals   AchievementTotals `json:"totals"`
}

// TeamAchievementReport representa o consolidado do negócio: membros não
// donos agrupados por produto, com atingimento por produto e do negócio
type TeamAchievementReport struct {
	BusinessID     string               `json:"business_id"`
	BusinessName   string               `json:"business_name,omitempty"`
	LogoURL        *string              `json:"logo_url,omitempty"`
	CurrencySymbol string               `json:"currency_symbol,omitempty"`
	Year           int                  `json:"year"`
	Months         []string             `json:"months"`
	Members        []MemberAchievement  `json:"members"`
	Products       []ProductAchievement `json:"products"`
	Totals         AchievementTotals    `json:"totals"`
}

// ProductProfit representa o lucro de um produto no período:
// valor vendido menos custo e despesas de marketing atribuíveis
type ProductProfit struct {
	ProductAchievement
	CostValue        float64 `json:"cost_value"`
	MarketingExpense float64 `json:"marketing_expense"`
	Profit           float64 `json:"profit"`
}

// ProfitReport representa a visão de lucro pessoal de um usuário
type ProfitReport struct {
	UserID         int             `json:"user_id"`
	BusinessID     string          `json:"business_id"`
	BusinessName   string          `json:"business_name,omitempty"`
	CurrencySymbol string          `json:"currency_symbol,omitempty"`
	Year           int             `json:"year"`
	Months         []string        `json:"months"`
	Products       []ProductProfit `json:"products"`
	Totals         ProfitTotals    `json:"totals"`
}

// ProfitTotals agrega a visão de lucro
type ProfitTotals struct {
	SalesValue       float64 `json:"sales_value"`
	CostValue        float64 `json:"cost_value"`
	MarketingExpense float64 `json:"marketing_expense"`
	Profit           float64 `json:"profit"`
}

// AchievementSnapshot representa o consolidado mensal de um negócio
// persistido pelo agendador
type AchievementSnapshot struct {
	ID         int64                  `json:"id"`
	BusinessID string                 `json:"business_id"`
	Period     string                 `json:"period"` // Formato mm-yyyy
	Report     *TeamAchievementReport `json:"report"`
	CreatedAt  string                 `json:"created_at,omitempty"`
	UpdatedAt  string                 `json:"updated_at,omitempty"`
}
