package domain

import "time"

// EntryKey é a chave natural de um lançamento diário: no máximo um
// lançamento por indicador por dia
type EntryKey struct {
	MetricID string
	Date     time.Time
}

// DailyEntry representa o valor realizado de um indicador em um dia.
// A escrita substitui o registro inteiro; não há atualização parcial
type DailyEntry struct {
	MetricID    string    `json:"metric_id"`
	OwnerID     string    `json:"owner_id"`
	Date        time.Time `json:"date"`
	ActualValue float64   `json:"actual_value"`
	Achieved    bool      `json:"is_achieved"`
	Notes       string    `json:"notes,omitempty"`
}

// Key retorna a chave natural do lançamento
func (e *DailyEntry) Key() EntryKey {
	return EntryKey{MetricID: e.MetricID, Date: e.Date}
}
