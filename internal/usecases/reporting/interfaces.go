package reporting

import (
	"context"

	"github.com/mvcarvalho/sales-target-api/internal/domain"
)

// Reporter define a interface dos relatórios de atingimento de metas
type Reporter interface {
	// MonthlyUserAchievement calcula o atingimento mensal de um usuário.
	// businessID vazio considera todos os negócios do usuário.
	MonthlyUserAchievement(ctx context.Context, userID int, businessID string, month, year int) (*domain.MonthlyAchievementReport, error)

	// YTDUserAchievement calcula o atingimento acumulado de janeiro até o mês
	// informado para um usuário
	YTDUserAchievement(ctx context.Context, userID int, businessID string, endMonth, year int) (*domain.YTDAchievementReport, error)

	// TeamAchievement consolida o atingimento de todos os membros não donos de
	// um negócio no intervalo
	TeamAchievement(ctx context.Context, businessID string, startMonth, endMonth, year int) (*domain.TeamAchievementReport, error)

	// PersonalProfit calcula a visão de lucro pessoal: atingimento enriquecido
	// com custo dos produtos e despesas de marketing do período
	PersonalProfit(ctx context.Context, userID int, businessID string, startMonth, endMonth, year int) (*domain.ProfitReport, error)
}
