package domain

import (
	"encoding/json"
	"math"
)

// TargetTiers são as três metas ordenadas de um indicador.
// Invariante: Minimum <= Standard <= Stretch
type TargetTiers struct {
	Minimum  float64 `json:"minimum"`
	Standard float64 `json:"standard"`
	Stretch  float64 `json:"stretch"`
}

// Ordered verifica o invariante de ordenação das metas
func (t TargetTiers) Ordered() bool {
	return t.Minimum <= t.Standard && t.Standard <= t.Stretch
}

// AchievementLevel é a classificação ordinal de um valor contra a escada de
// metas. A ordem numérica dos níveis é significativa: níveis maiores
// representam desempenho melhor
type AchievementLevel int

const (
	// AchievementUnclassified é o resultado conservador quando as metas do
	// indicador não existem mais (indicador excluído)
	AchievementUnclassified AchievementLevel = iota
	AchievementBelowMinimum
	AchievementAtMinimum
	AchievementAtStandard
	AchievementAtStretch
)

var achievementNames = map[AchievementLevel]string{
	AchievementUnclassified: "UNCLASSIFIED",
	AchievementBelowMinimum: "BELOW_MINIMUM",
	AchievementAtMinimum:    "AT_MINIMUM",
	AchievementAtStandard:   "AT_STANDARD",
	AchievementAtStretch:    "AT_STRETCH",
}

func (l AchievementLevel) String() string {
	if name, ok := achievementNames[l]; ok {
		return name
	}
	return "UNCLASSIFIED"
}

// MarshalJSON serializa o nível como o nome da classificação
func (l AchievementLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// Classify mapeia um valor para o nível de realização na escada de metas.
// Valores exatamente na fronteira pertencem ao nível superior
// (value == standard classifica como AT_STANDARD, não AT_MINIMUM)
func Classify(value float64, tiers TargetTiers) AchievementLevel {
	switch {
	case value >= tiers.Stretch:
		return AchievementAtStretch
	case value >= tiers.Standard:
		return AchievementAtStandard
	case value >= tiers.Minimum:
		return AchievementAtMinimum
	default:
		return AchievementBelowMinimum
	}
}

// ProgressPercentage calcula o percentual de progresso contra a meta padrão.
// O resultado não é limitado a 100 para que a superação da meta fique visível
func ProgressPercentage(value, standard float64) float64 {
	if standard == 0 {
		return 0
	}
	return math.Round(value / standard * 100)
}
