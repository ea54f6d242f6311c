package reporting

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/mvcarvalho/sales-target-api/infrastructure/repository"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	// Consultas aos repositórios são retentadas antes de desistir
	lookupAttempts = 3
	lookupBackoff  = 200 * time.Millisecond
)

// Service implementa a interface Reporter sobre os repositórios
type Service struct {
	businessRepository      repository.BusinessRepository
	productRepository       repository.ProductRepository
	productTargetRepository repository.ProductTargetRepository
	userTargetRepository    repository.UserTargetRepository
	userSalesRepository     repository.UserSalesRepository
	expenseRepository       repository.ExpenseRepository
	userRepository          repository.UserRepository
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	productTargetRepo repository.ProductTargetRepository,
	userTargetRepo repository.UserTargetRepository,
	userSalesRepo repository.UserSalesRepository,
	expenseRepo repository.ExpenseRepository,
	userRepo repository.UserRepository,
) Reporter {
	return &Service{
		businessRepository:      businessRepo,
		productRepository:       productRepo,
		productTargetRepository: productTargetRepo,
		userTargetRepository:    userTargetRepo,
		userSalesRepository:     userSalesRepo,
		expenseRepository:       expenseRepo,
		userRepository:          userRepo,
	}
}

// reportScope delimita o escopo de um relatório: os negócios consultados e,
// quando o escopo é um único negócio, seus metadados para o cabeçalho
type reportScope struct {
	business    *domain.Business
	businessIDs []string
}

// MonthlyUserAchievement calcula o atingimento mensal de um usuário
func (s *Service) MonthlyUserAchievement(ctx context.Context, userID int, businessID string, month, year int) (*domain.MonthlyAchievementReport, error) {
	period, err := ResolveMonth(month, year)
	if err != nil {
		return nil, err
	}

	scope, err := s.resolveScope(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	achievements, productNames, err := s.userAchievements(ctx, userID, scope, period)
	if err != nil {
		return nil, err
	}

	return AssembleMonthlyReport(userID, scope.business, period, achievements, productNames), nil
}

// YTDUserAchievement calcula o atingimento acumulado de janeiro até o mês
// informado para um usuário
func (s *Service) YTDUserAchievement(ctx context.Context, userID int, businessID string, endMonth, year int) (*domain.YTDAchievementReport, error) {
	period, err := ResolvePeriod(1, endMonth, year)
	if err != nil {
		return nil, err
	}

	scope, err := s.resolveScope(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	achievements, productNames, err := s.userAchievements(ctx, userID, scope, period)
	if err != nil {
		return nil, err
	}

	return AssembleYTDReport(userID, scope.business, period, achievements, productNames), nil
}

// TeamAchievement consolida o atingimento dos membros não donos de um negócio
func (s *Service) TeamAchievement(ctx context.Context, businessID string, startMonth, endMonth, year int) (*domain.TeamAchievementReport, error) {
	period, err := ResolvePeriod(startMonth, endMonth, year)
	if err != nil {
		return nil, err
	}

	var business *domain.Business
	err = s.retryLookup(ctx, "negócio", func() error {
		var lookupErr error
		business, lookupErr = s.businessRepository.GetBusiness(businessID)
		return lookupErr
	})
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, fmt.Errorf("negócio não encontrado: %s", businessID)
	}

	var memberships []*domain.BusinessMembership
	err = s.retryLookup(ctx, "membros do negócio", func() error {
		var lookupErr error
		memberships, lookupErr = s.businessRepository.ListMembers(businessID)
		return lookupErr
	})
	if err != nil {
		return nil, err
	}

	var products []*domain.Product
	err = s.retryLookup(ctx, "produtos", func() error {
		var lookupErr error
		products, lookupErr = s.productRepository.ListByBusiness(businessID)
		return lookupErr
	})
	if err != nil {
		return nil, err
	}

	scope := &reportScope{business: business, businessIDs: []string{businessID}}

	// Calcular o atingimento de cada membro em paralelo. Donos não entram no
	// consolidado da equipe.
	var (
		mu                 sync.Mutex
		wg                 sync.WaitGroup
		memberAchievements = make(map[int][]domain.ProductAchievement)
		memberNames        = make(map[int]string)
		memberErr          error
	)

	for _, membership := range memberships {
		if membership.IsOwner {
			continue
		}

		wg.Add(1)
		go func(memberID int) {
			defer wg.Done()

			achievements, _, err := s.userAchievements(ctx, memberID, scope, period)
			if err != nil {
				mu.Lock()
				if memberErr == nil {
					memberErr = err
				}
				mu.Unlock()
				return
			}

			name := strconv.Itoa(memberID)
			user, err := s.userRepository.GetUserByID(memberID)
			if err != nil {
				logrus.Warnf("Erro ao buscar usuário %d para o consolidado: %v", memberID, err)
			} else if user != nil {
				name = user.Name + " " + user.Lastname
			}

			mu.Lock()
			memberAchievements[memberID] = achievements
			memberNames[memberID] = name
			mu.Unlock()
		}(membership.UserID)
	}
	wg.Wait()

	if memberErr != nil {
		return nil, memberErr
	}

	return AssembleTeamReport(business, period, memberAchievements, memberNames, productNameIndex(products)), nil
}

// PersonalProfit calcula a visão de lucro pessoal do usuário no intervalo
func (s *Service) PersonalProfit(ctx context.Context, userID int, businessID string, startMonth, endMonth, year int) (*domain.ProfitReport, error) {
	period, err := ResolvePeriod(startMonth, endMonth, year)
	if err != nil {
		return nil, err
	}

	scope, err := s.resolveScope(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	achievements, _, err := s.userAchievements(ctx, userID, scope, period)
	if err != nil {
		return nil, err
	}

	var products []*domain.Product
	err = s.retryLookup(ctx, "produtos", func() error {
		var lookupErr error
		products, lookupErr = s.productRepository.ListByBusinessIDs(scope.businessIDs)
		return lookupErr
	})
	if err != nil {
		return nil, err
	}

	// Somar as despesas de marketing do período por produto. Despesas sem
	// produto atribuído não entram na visão por produto.
	expensesByProduct := make(map[string]float64)
	for _, id := range scope.businessIDs {
		var expenses []*domain.Expense
		err = s.retryLookup(ctx, "despesas", func() error {
			var lookupErr error
			expenses, lookupErr = s.expenseRepository.ListByBusinessAndPeriod(id, period.StartDate, period.EndDate)
			return lookupErr
		})
		if err != nil {
			return nil, err
		}

		for _, expense := range expenses {
			if expense.ProductID == nil {
				continue
			}
			expensesByProduct[*expense.ProductID] += expense.Amount
		}
	}

	productIndex := make(map[string]*domain.Product, len(products))
	for _, product := range products {
		productIndex[product.ID] = product
	}

	return AssembleProfitReport(userID, scope.business, period, achievements, productIndex, expensesByProduct), nil
}

// resolveScope determina os negócios consultados pelo relatório. Com
// businessID explícito o escopo é aquele negócio; sem ele, todos os negócios
// do usuário, com metadados no cabeçalho apenas quando há exatamente um.
func (s *Service) resolveScope(ctx context.Context, userID int, businessID string) (*reportScope, error) {
	if businessID != "" {
		var business *domain.Business
		err := s.retryLookup(ctx, "negócio", func() error {
			var lookupErr error
			business, lookupErr = s.businessRepository.GetBusiness(businessID)
			return lookupErr
		})
		if err != nil {
			return nil, err
		}
		if business == nil {
			return nil, fmt.Errorf("negócio não encontrado: %s", businessID)
		}

		return &reportScope{business: business, businessIDs: []string{businessID}}, nil
	}

	var businesses []*domain.Business
	err := s.retryLookup(ctx, "negócios do usuário", func() error {
		var lookupErr error
		businesses, lookupErr = s.businessRepository.ListBusinessesByUser(userID)
		return lookupErr
	})
	if err != nil {
		return nil, err
	}

	scope := &reportScope{businessIDs: make([]string, 0, len(businesses))}
	for _, business := range businesses {
		scope.businessIDs = append(scope.businessIDs, business.ID)
	}
	if len(businesses) == 1 {
		scope.business = businesses[0]
	}

	return scope, nil
}

// userAchievements executa o núcleo do cálculo para um usuário: busca vendas
// e metas em paralelo, casa as vendas finais do período e agrega por produto
func (s *Service) userAchievements(ctx context.Context, userID int, scope *reportScope, period *domain.Period) ([]domain.ProductAchievement, map[string]string, error) {
	var (
		sales          []*domain.UserSales
		productTargets []*domain.ProductTarget
		userTargets    []*domain.UserTarget
		products       []*domain.Product

		salesErr    error
		targetsErr  error
		userErr     error
		productsErr error
	)

	// Usar WaitGroup para esperar as buscas paralelas terminarem
	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		salesErr = s.retryLookup(ctx, "vendas finais", func() error {
			var lookupErr error
			sales, lookupErr = s.userSalesRepository.ListFinalByUserAndPeriod(userID, period.StartDate, period.EndDate)
			return lookupErr
		})
	}()

	go func() {
		defer wg.Done()
		targetsErr = s.retryLookup(ctx, "metas de produto", func() error {
			var lookupErr error
			productTargets, lookupErr = s.productTargetRepository.ListByBusinessIDs(scope.businessIDs)
			return lookupErr
		})
	}()

	go func() {
		defer wg.Done()
		userErr = s.retryLookup(ctx, "metas do usuário", func() error {
			var lookupErr error
			userTargets, lookupErr = s.userTargetRepository.ListByUser(userID)
			return lookupErr
		})
	}()

	go func() {
		defer wg.Done()
		productsErr = s.retryLookup(ctx, "produtos", func() error {
			var lookupErr error
			products, lookupErr = s.productRepository.ListByBusinessIDs(scope.businessIDs)
			return lookupErr
		})
	}()

	wg.Wait()

	for _, err := range []error{salesErr, targetsErr, userErr, productsErr} {
		if err != nil {
			return nil, nil, err
		}
	}

	// Restringir as vendas aos negócios do escopo
	scoped := make([]*domain.UserSales, 0, len(sales))
	for _, record := range sales {
		if salesInScope(record, scope.businessIDs) {
			scoped = append(scoped, record)
		}
	}

	matched := MatchFinalSales(scoped, period, "")

	monthTargets, err := s.monthlyTargetsFor(userID, scope, period, productTargets, userTargets)
	if err != nil {
		return nil, nil, err
	}

	return ComputeAchievement(matched, monthTargets), productNameIndex(products), nil
}

// monthlyTargetsFor resolve as fatias mensais de meta do usuário no período.
// Quando o usuário tem alocação própria para o produto, ela é multiplicada
// pelo faseamento da meta do produto; sem alocação, valem as fatias mensais
// da meta do produto. Baldes bulk (rotulados pelo ano) só contam quando o
// período cobre o ano inteiro.
func (s *Service) monthlyTargetsFor(
	userID int,
	scope *reportScope,
	period *domain.Period,
	productTargets []*domain.ProductTarget,
	userTargets []*domain.UserTarget,
) ([]ProductMonthTarget, error) {
	allocations := make(map[string]domain.ProductAllocation)
	for _, target := range userTargets {
		if !slices.Contains(scope.businessIDs, target.BusinessID) {
			continue
		}
		yearly := target.FindYear(period.Year)
		if yearly == nil {
			continue
		}
		for _, alloc := range yearly.Products {
			allocations[alloc.ProductID] = alloc
		}
	}

	fullYear := period.StartMonth == time.January && period.EndMonth == time.December
	bulkLabel := strconv.Itoa(period.Year)

	result := make([]ProductMonthTarget, 0, len(productTargets))
	for _, target := range productTargets {
		yearTarget := target.FindYear(period.Year)
		if yearTarget == nil {
			continue
		}

		if alloc, ok := allocations[target.ProductID]; ok {
			months, err := ResolveUserMonthlyTargets(alloc, yearTarget, period)
			if err != nil {
				return nil, err
			}
			for _, month := range months {
				result = append(result, ProductMonthTarget{ProductID: target.ProductID, Target: month})
			}
			continue
		}

		for _, name := range period.MonthNames {
			if month := yearTarget.FindMonth(name); month != nil {
				result = append(result, ProductMonthTarget{ProductID: target.ProductID, Target: *month})
			}
		}

		if fullYear {
			if bulk := yearTarget.FindMonth(bulkLabel); bulk != nil {
				result = append(result, ProductMonthTarget{ProductID: target.ProductID, Target: *bulk})
			}
		}
	}

	return result, nil
}

// retryLookup executa uma consulta com novas tentativas e backoff linear.
// Após esgotar as tentativas o erro é embrulhado em ErrUpstreamLookup.
func (s *Service) retryLookup(ctx context.Context, name string, lookup func() error) error {
	var err error
	for attempt := 1; attempt <= lookupAttempts; attempt++ {
		if err = lookup(); err == nil {
			return nil
		}

		logrus.Warnf("Erro ao consultar %s (tentativa %d/%d): %v", name, attempt, lookupAttempts, err)

		if attempt < lookupAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * lookupBackoff):
			}
		}
	}

	return fmt.Errorf("%w: %s: %v", ErrUpstreamLookup, name, err)
}

func salesInScope(record *domain.UserSales, businessIDs []string) bool {
	for _, id := range record.BusinessIDs {
		if slices.Contains(businessIDs, id) {
			return true
		}
	}
	return false
}

func productNameIndex(products []*domain.Product) map[string]string {
	names := make(map[string]string, len(products))
	for _, product := range products {
		names[product.ID] = product.DisplayName()
	}
	return names
}
