package domain

import "time"

type MetricCategory string

const (
	CategorySales       MetricCategory = "sales"
	CategoryDevelopment MetricCategory = "development"
)

// IsValid verifica se a categoria é uma das categorias conhecidas
func (c MetricCategory) IsValid() bool {
	return c == CategorySales || c == CategoryDevelopment
}

// MetricDefinition representa um indicador de desempenho com as três metas ordenadas
type MetricDefinition struct {
	ID             string         `json:"id"`
	OwnerID        string         `json:"owner_id"`
	Category       MetricCategory `json:"category"`
	Type           string         `json:"type"`
	Name           string         `json:"name"`
	Unit           string         `json:"unit"`
	MinimumTarget  float64        `json:"minimum_target"`
	StandardTarget float64        `json:"standard_target"`
	StretchTarget  float64        `json:"stretch_target"`
	CurrentValue   float64        `json:"current_value"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Tiers retorna as três metas do indicador na forma usada pelo classificador
func (m *MetricDefinition) Tiers() TargetTiers {
	return TargetTiers{
		Minimum:  m.MinimumTarget,
		Standard: m.StandardTarget,
		Stretch:  m.StretchTarget,
	}
}

// MetricSpec representa os dados de criação de um indicador.
// MinimumTarget e StretchTarget são opcionais: quando omitidos, as metas
// são derivadas a partir da meta padrão (0.7x e 1.3x)
type MetricSpec struct {
	Category       MetricCategory `json:"category"`
	Type           string         `json:"type"`
	Name           string         `json:"name"`
	Unit           string         `json:"unit"`
	StandardTarget float64        `json:"standard_target"`
	MinimumTarget  *float64       `json:"minimum_target,omitempty"`
	StretchTarget  *float64       `json:"stretch_target,omitempty"`
}

// MetricUpdate representa uma atualização parcial de um indicador.
// Campos nulos são preservados do registro existente
type MetricUpdate struct {
	Name           *string  `json:"name,omitempty"`
	Unit           *string  `json:"unit,omitempty"`
	MinimumTarget  *float64 `json:"minimum_target,omitempty"`
	StandardTarget *float64 `json:"standard_target,omitempty"`
	StretchTarget  *float64 `json:"stretch_target,omitempty"`
}

// CurrentValueUpdate representa a escrita do valor consolidado de um indicador
type CurrentValueUpdate struct {
	MetricID     string    `json:"metric_id"`
	CurrentValue float64   `json:"current_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}
