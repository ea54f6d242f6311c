package targeting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de administração de metas
var (
	// Erros de validação
	ErrProductNotFound      = errors.New("product not found")
	ErrBusinessNotFound     = errors.New("business not found")
	ErrPhasingTableNotFound = errors.New("phasing table not found")
	ErrPhasingTableRequired = errors.New("phased target requires a phasing table")
	ErrInvalidTargetType    = errors.New("invalid target type")
	ErrInvalidAllocation    = errors.New("invalid user target allocation")
	ErrInvalidPhasingEntry  = errors.New("invalid phasing entry")

	// Erros de banco de dados
	ErrSaveTarget        = errors.New("error saving target")
	ErrFetchTarget       = errors.New("error fetching target")
	ErrSavePhasingTable  = errors.New("error saving phasing table")
	ErrFetchPhasingTable = errors.New("error fetching phasing table")

	// Erros de geração de identificadores
	ErrGenerateID = errors.New("error generating ID")
)

// TargetError é um erro com contexto adicional para metas
type TargetError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ProductID string // ID do produto envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TargetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TargetError) Unwrap() error {
	return e.Err
}

// NewTargetError cria um novo TargetError
func NewTargetError(err error, code string, details string) *TargetError {
	return &TargetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewTargetErrorWithProduct cria um novo TargetError com ID do produto
func NewTargetErrorWithProduct(err error, code string, productID string, details string) *TargetError {
	return &TargetError{
		Err:       err,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}
