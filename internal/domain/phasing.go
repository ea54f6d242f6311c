package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Percentage representa um percentual normalizado como fração de 1
// (ex: "25%" vira 0.25). Substitui o tratamento de strings com "%"
// espalhado pelos chamadores.
type Percentage float64

// ParsePercentage normaliza um percentual vindo do chamador. Aceita o
// formato com sufixo "%" ("25%") ou uma fração de 1 ("0.25"). Entradas
// malformadas retornam erro, nunca são tratadas como zero.
func ParsePercentage(raw string) (Percentage, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("percentual vazio")
	}

	fraction := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		fraction = 100.0
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("percentual malformado %q: %w", raw, err)
	}

	value /= fraction
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, fmt.Errorf("percentual fora de domínio %q", raw)
	}

	return Percentage(value), nil
}

// Of aplica o percentual sobre um valor
func (p Percentage) Of(value float64) float64 {
	return value * float64(p)
}

// String formata o percentual com o sufixo "%"
func (p Percentage) String() string {
	return strconv.FormatFloat(float64(p)*100, 'f', -1, 64) + "%"
}

// PhasingEntry representa o percentual atribuído a um mês dentro de uma curva
type PhasingEntry struct {
	Month      string `json:"month"`
	Percentage string `json:"percentage"` // Normalizado via ParsePercentage
}

// PhasingTable representa uma curva percentual nomeada e reutilizável
// (ex: curva sazonal de vendas) de um negócio
type PhasingTable struct {
	ID         string         `json:"id"`
	BusinessID string         `json:"business_id"`
	Name       string         `json:"name"`
	Entries    []PhasingEntry `json:"entries"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// SavePhasingTableRequest descreve a criação ou atualização de uma curva.
// ID vazio cria uma curva nova.
type SavePhasingTableRequest struct {
	ID         string         `json:"id,omitempty"`
	BusinessID string         `json:"business_id"`
	Name       string         `json:"name"`
	Entries    []PhasingEntry `json:"entries"`
}

// FindEntry retorna a primeira entrada da curva cujo mês é igual ao
// informado, ou nil quando a curva não cobre o mês
func (t *PhasingTable) FindEntry(month string) *PhasingEntry {
	for i := range t.Entries {
		if t.Entries[i].Month == month {
			return &t.Entries[i]
		}
	}
	return nil
}
