package targeting

import (
	"fmt"
	"time"

	"github.com/mvcarvalho/sales-target-api/infrastructure/repository"
	"github.com/mvcarvalho/sales-target-api/internal/domain"
	"github.com/mvcarvalho/sales-target-api/internal/usecases/reporting"
	"github.com/mvcarvalho/sales-target-api/pkg/apiErrors"
	"github.com/mvcarvalho/sales-target-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// TargetService define a administração de metas de produtos, alocações por
// usuário e curvas de faseamento
type TargetService interface {
	SetProductTarget(request *domain.SetProductTargetRequest) (*domain.ProductTarget, error)
	GetProductTarget(productID, businessID string) (*domain.ProductTarget, error)
	ListProductTargets(businessIDs []string) ([]*domain.ProductTarget, error)
	DeleteProductTarget(productID, businessID string) error

	SetUserTarget(request *domain.SetUserTargetRequest) (*domain.UserTarget, error)
	GetUserTarget(userID int, businessID string) (*domain.UserTarget, error)

	SavePhasingTable(request *domain.SavePhasingTableRequest) (*domain.PhasingTable, error)
	GetPhasingTable(tableID string) (*domain.PhasingTable, error)
	ListPhasingTables(businessID string) ([]*domain.PhasingTable, error)
	DeletePhasingTable(tableID string) error
}

type Service struct {
	productRepository       repository.ProductRepository
	productTargetRepository repository.ProductTargetRepository
	userTargetRepository    repository.UserTargetRepository
	phasingTableRepository  repository.PhasingTableRepository
}

func NewService(
	productRepository repository.ProductRepository,
	productTargetRepository repository.ProductTargetRepository,
	userTargetRepository repository.UserTargetRepository,
	phasingTableRepository repository.PhasingTableRepository,
) TargetService {
	return &Service{
		productRepository:       productRepository,
		productTargetRepository: productTargetRepository,
		userTargetRepository:    userTargetRepository,
		phasingTableRepository:  phasingTableRepository,
	}
}

// SetProductTarget cria ou atualiza a meta de um produto. No caminho de
// criação a divisão igualitária arredonda para cima; no de atualização as
// fatias novas são mescladas sobre o balde do ano preservando o addedIn dos
// meses já cobertos.
func (s *Service) SetProductTarget(request *domain.SetProductTargetRequest) (*domain.ProductTarget, error) {
	switch request.TargetType {
	case domain.TargetTypeMonthly, domain.TargetTypeQuarterly, domain.TargetTypeYearly, domain.TargetTypeBulk:
	default:
		return nil, NewTargetErrorWithProduct(ErrInvalidTargetType, apiErrors.ErrInvalidRequest,
			request.ProductID, fmt.Sprintf("tipo de meta desconhecido: %q", request.TargetType))
	}

	product, err := s.productRepository.GetProduct(request.ProductID)
	if err != nil {
		return nil, NewTargetErrorWithProduct(ErrFetchTarget, apiErrors.ErrDatabaseOperation,
			request.ProductID, "Falha ao buscar produto no banco de dados")
	}
	if product == nil {
		return nil, NewTargetErrorWithProduct(ErrProductNotFound, apiErrors.ErrInvalidRequest,
			request.ProductID, "Produto não encontrado")
	}

	definition := domain.TargetDefinition{
		TargetUnits: request.TargetUnits,
		TargetValue: request.TargetValue,
		UnitPrice:   request.UnitPrice,
		TargetType:  request.TargetType,
		Phased:      request.Phased,
		StartDate:   request.StartDate,
	}

	if request.Phased {
		if request.PhasingTableID == nil || *request.PhasingTableID == "" {
			return nil, NewTargetErrorWithProduct(ErrPhasingTableRequired, apiErrors.ErrMissingRequiredData,
				request.ProductID, "Meta faseada exige uma curva de faseamento")
		}

		table, err := s.phasingTableRepository.GetPhasingTable(*request.PhasingTableID)
		if err != nil {
			return nil, NewTargetError(ErrFetchPhasingTable, apiErrors.ErrDatabaseOperation,
				"Falha ao buscar curva de faseamento no banco de dados")
		}
		if table == nil {
			return nil, NewTargetError(ErrPhasingTableNotFound, apiErrors.ErrInvalidRequest,
				fmt.Sprintf("Curva de faseamento não encontrada: %s", *request.PhasingTableID))
		}
		definition.PhasingTable = table
	}

	existing, err := s.productTargetRepository.GetByProductAndBusiness(request.ProductID, request.BusinessID)
	if err != nil {
		return nil, NewTargetErrorWithProduct(ErrFetchTarget, apiErrors.ErrDatabaseOperation,
			request.ProductID, "Falha ao buscar meta no banco de dados")
	}

	target := existing
	if target == nil {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewTargetError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar ID da meta")
		}

		years, err := reporting.ResolveMonthlyTargets(definition)
		if err != nil {
			return nil, err
		}

		target = &domain.ProductTarget{
			ID:          id,
			ProductID:   request.ProductID,
			BusinessID:  request.BusinessID,
			Currency:    product.Currency,
			YearTargets: years,
		}
	} else {
		years, err := reporting.ResolveMonthlyTargetsForUpdate(definition)
		if err != nil {
			return nil, err
		}

		target.YearTargets = reporting.MergeYearTargets(target.YearTargets, years, request.Replace, time.Now())
	}

	if err := s.productTargetRepository.SaveOrUpdate(target); err != nil {
		logrus.Errorf("Erro ao salvar meta do produto %s: %v", request.ProductID, err)
		return nil, NewTargetErrorWithProduct(ErrSaveTarget, apiErrors.ErrDatabaseOperation,
			request.ProductID, "Falha ao salvar meta no banco de dados")
	}

	return target, nil
}

func (s *Service) GetProductTarget(productID, businessID string) (*domain.ProductTarget, error) {
	target, err := s.productTargetRepository.GetByProductAndBusiness(productID, businessID)
	if err != nil {
		return nil, NewTargetErrorWithProduct(ErrFetchTarget, apiErrors.ErrDatabaseOperation,
			productID, "Falha ao buscar meta no banco de dados")
	}
	return target, nil
}

func (s *Service) ListProductTargets(businessIDs []string) ([]*domain.ProductTarget, error) {
	targets, err := s.productTargetRepository.ListByBusinessIDs(businessIDs)
	if err != nil {
		return nil, NewTargetError(ErrFetchTarget, apiErrors.ErrDatabaseOperation,
			"Falha ao listar metas no banco de dados")
	}
	return targets, nil
}

func (s *Service) DeleteProductTarget(productID, businessID string) error {
	target, err := s.productTargetRepository.GetByProductAndBusiness(productID, businessID)
	if err != nil {
		return NewTargetErrorWithProduct(ErrFetchTarget, apiErrors.ErrDatabaseOperation,
			productID, "Falha ao buscar meta no banco de dados")
	}
	if target == nil {
		return nil
	}

	if err := s.productTargetRepository.Delete(target.ID); err != nil {
		return NewTargetErrorWithProduct(ErrSaveTarget, apiErrors.ErrDatabaseOperation,
			productID, "Falha ao remover meta no banco de dados")
	}
	return nil
}

// SetUserTarget cria ou atualiza as alocações anuais de um usuário. Com
// replace o balde do ano é substituído por inteiro; sem replace, alocações
// novas são adicionadas e as existentes atualizadas por produto.
func (s *Service) SetUserTarget(request *domain.SetUserTargetRequest) (*domain.UserTarget, error) {
	if request.Year < 1 {
		return nil, NewTargetError(ErrInvalidAllocation, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("ano fora de domínio: %d", request.Year))
	}

	for _, alloc := range request.Products {
		if alloc.ProductID == "" {
			return nil, NewTargetError(ErrInvalidAllocation, apiErrors.ErrMissingRequiredData,
				"alocação sem produto")
		}
		if alloc.TargetUnits < 0 || alloc.TargetValue < 0 {
			return nil, NewTargetErrorWithProduct(ErrInvalidAllocation, apiErrors.ErrInvalidRequest,
				alloc.ProductID, "alocação com valores negativos")
		}
	}

	target, err := s.userTargetRepository.GetByUserAndBusiness(request.UserID, request.BusinessID)
	if err != nil {
		return nil, NewTargetError(ErrFetchTarget, apiErrors.ErrDatabaseOperation,
			"Falha ao buscar meta do usuário no banco de dados")
	}

	if target == nil {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewTargetError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar ID da meta")
		}
		target = &domain.UserTarget{
			ID:         id,
			UserID:     request.UserID,
			BusinessID: request.BusinessID,
		}
	}

	yearly := target.FindYear(request.Year)
	if yearly == nil || request.Replace {
		if yearly == nil {
			target.Years = append(target.Years, domain.YearlyUserTargets{Year: request.Year})
			yearly = &target.Years[len(target.Years)-1]
		}
		yearly.Products = request.Products
	} else {
		for _, alloc := range request.Products {
			replaced := false
			for i := range yearly.Products {
				if yearly.Products[i].ProductID == alloc.ProductID {
					yearly.Products[i] = alloc
					replaced = true
					break
				}
			}
			if !replaced {
				yearly.Products = append(yearly.Products, alloc)
			}
		}
	}

	if err := s.userTargetRepository.SaveOrUpdate(target); err != nil {
		logrus.Errorf("Erro ao salvar meta do usuário %d: %v", request.UserID, err)
		return nil, NewTargetError(ErrSaveTarget, apiErrors.ErrDatabaseOperation,
			"Falha ao salvar meta do usuário no banco de dados")
	}

	return target, nil
}

func (s *Service) GetUserTarget(userID int, businessID string) (*domain.UserTarget, error) {
	target, err := s.userTargetRepository.GetByUserAndBusiness(userID, businessID)
	if err != nil {
		return nil, NewTargetError(ErrFetchTarget, apiErrors.ErrDatabaseOperation,
			"Falha ao buscar meta do usuário no banco de dados")
	}
	return target, nil
}

// SavePhasingTable cria ou atualiza uma curva de faseamento. Cada entrada é
// validada e normalizada pelo objeto Percentage antes de persistir; entradas
// malformadas nunca chegam ao banco.
func (s *Service) SavePhasingTable(request *domain.SavePhasingTableRequest) (*domain.PhasingTable, error) {
	if request.Name == "" {
		return nil, NewTargetError(ErrInvalidPhasingEntry, apiErrors.ErrMissingRequiredData,
			"curva sem nome")
	}

	entries := make([]domain.PhasingEntry, 0, len(request.Entries))
	for _, entry := range request.Entries {
		if entry.Month == "" {
			return nil, NewTargetError(ErrInvalidPhasingEntry, apiErrors.ErrMissingRequiredData,
				"entrada de curva sem mês")
		}

		percentage, err := domain.ParsePercentage(entry.Percentage)
		if err != nil {
			return nil, NewTargetError(ErrInvalidPhasingEntry, apiErrors.ErrInvalidFormat,
				fmt.Sprintf("percentual inválido para o mês %s: %v", entry.Month, err))
		}

		entries = append(entries, domain.PhasingEntry{
			Month:      entry.Month,
			Percentage: percentage.String(),
		})
	}

	id := request.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return nil, NewTargetError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar ID da curva")
		}
		id = generated
	}

	table := &domain.PhasingTable{
		ID:         id,
		BusinessID: request.BusinessID,
		Name:       request.Name,
		Entries:    entries,
	}

	if err := s.phasingTableRepository.SaveOrUpdate(table); err != nil {
		logrus.Errorf("Erro ao salvar curva de faseamento %s: %v", table.ID, err)
		return nil, NewTargetError(ErrSavePhasingTable, apiErrors.ErrDatabaseOperation,
			"Falha ao salvar curva de faseamento no banco de dados")
	}

	return table, nil
}

func (s *Service) GetPhasingTable(tableID string) (*domain.PhasingTable, error) {
	table, err := s.phasingTableRepository.GetPhasingTable(tableID)
	if err != nil {
		return nil, NewTargetError(ErrFetchPhasingTable, apiErrors.ErrDatabaseOperation,
			"Falha ao buscar curva de faseamento no banco de dados")
	}
	return table, nil
}

func (s *Service) ListPhasingTables(businessID string) ([]*domain.PhasingTable, error) {
	tables, err := s.phasingTableRepository.ListByBusiness(businessID)
	if err != nil {
		return nil, NewTargetError(ErrFetchPhasingTable, apiErrors.ErrDatabaseOperation,
			"Falha ao listar curvas de faseamento no banco de dados")
	}
	return tables, nil
}

func (s *Service) DeletePhasingTable(tableID string) error {
	if err := s.phasingTableRepository.Delete(tableID); err != nil {
		return NewTargetError(ErrSavePhasingTable, apiErrors.ErrDatabaseOperation,
			"Falha ao remover curva de faseamento no banco de dados")
	}
	return nil
}
