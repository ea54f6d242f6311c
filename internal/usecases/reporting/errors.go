package reporting

import (
	"errors"
	"fmt"
)

// Erros determinísticos de computação: indicam entrada ou dado malformado e
// nunca devem ser retentados
var (
	ErrInvalidRange           = errors.New("invalid period range")
	ErrPhasingTableIncomplete = errors.New("phasing table does not cover month")
	ErrInvalidPhasingFormat   = errors.New("invalid phasing percentage format")
)

// Erros de resultado e de infraestrutura
var (
	// ErrNoData sinaliza "nada a relatar" (diferente de relatar zero)
	ErrNoData = errors.New("no sales or targets found for scope and period")
	// ErrUpstreamLookup indica falha transitória de um colaborador; sempre
	// retentável pelo chamador
	ErrUpstreamLookup = errors.New("upstream lookup failed")
)

// ReportError é um erro com contexto suficiente para diagnóstico: nomeia a
// entidade ofensora (produto, mês, ano) sem expor campos internos ao usuário
type ReportError struct {
	Err     error  // Erro base
	Product string // Nome/apelido do produto envolvido (quando aplicável)
	Month   string // Mês envolvido (quando aplicável)
	Year    int    // Ano envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	msg := e.Err.Error()
	if e.Product != "" {
		msg = fmt.Sprintf("%s (produto: %s)", msg, e.Product)
	}
	if e.Month != "" {
		msg = fmt.Sprintf("%s (mês: %s)", msg, e.Month)
	}
	if e.Year != 0 {
		msg = fmt.Sprintf("%s (ano: %d)", msg, e.Year)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError
func NewReportError(err error, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Details: details,
	}
}
