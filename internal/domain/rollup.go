package domain

import "time"

// RollupKey identifica a visão mensal derivada de um indicador
type RollupKey struct {
	MetricID string
	Year     int
	Month    time.Month
}

// MonthlyRollup é o agregado mensal derivado do razão de lançamentos.
// É sempre recomputável a partir dos lançamentos e nunca é a fonte
// autoritativa dos dados
type MonthlyRollup struct {
	MetricID        string           `json:"metric_id"`
	Year            int              `json:"year"`
	Month           time.Month       `json:"month"`
	TotalActual     float64          `json:"total_actual"`
	DaysRecorded    int              `json:"days_recorded"`
	DaysAchieved    int              `json:"days_achieved"`
	Achievement     AchievementLevel `json:"achievement"`
	ProgressPercent float64          `json:"progress_percent"`
}

// OwnerRollupReport agrega as visões mensais de todos os indicadores de um
// responsável, enriquecidas com o nome resolvido pelo diretório
type OwnerRollupReport struct {
	OwnerID   string                    `json:"owner_id"`
	OwnerName string                    `json:"owner_name,omitempty"`
	Year      int                       `json:"year"`
	Month     time.Month                `json:"month"`
	Rollups   map[string]*MonthlyRollup `json:"rollups"`
}

// SyncResult resume uma reconciliação de valores consolidados
type SyncResult struct {
	OwnerID       string     `json:"owner_id"`
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	MetricsSynced int        `json:"metrics_synced"`
	SyncedAt      time.Time  `json:"synced_at"`
}
