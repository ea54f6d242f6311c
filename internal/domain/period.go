package domain

import "time"

// Period representa um intervalo mensal resolvido dentro de um único ano
// calendário. A aritmética é feita sobre pares inteiros (ano, mês); nomes de
// meses só aparecem na borda, nos relatórios.
type Period struct {
	Year       int          `json:"year"`
	StartMonth time.Month   `json:"start_month"`
	EndMonth   time.Month   `json:"end_month"`
	StartDate  time.Time    `json:"start_date"`
	EndDate    time.Time    `json:"end_date"`
	Months     []time.Month `json:"-"`
	MonthNames []string     `json:"month_names"`
}

// Contains verifica se a janela [start, end] de um registro está inteiramente
// dentro do período (checagem de contenção, não de sobreposição)
func (p *Period) Contains(start, end time.Time) bool {
	return !start.Before(p.StartDate) && !end.After(p.EndDate)
}

// MonthName retorna o nome de exibição de um mês (ex: "March")
func MonthName(m time.Month) string {
	return m.String()
}
