package rollup

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

type RollupService interface {
	ComputeMonthlyRollup(metricID string, year int, month time.Month) (*domain.MonthlyRollup, error)
	ComputeAll(ownerID string, year int, month time.Month) (map[string]*domain.MonthlyRollup, error)
	Invalidate(key domain.RollupKey)
}

// Service deriva visões mensais a partir do razão de lançamentos. A visão é
// um cache descartável: o razão é sempre a fonte da verdade e qualquer
// cópia pode ser recomputada a qualquer momento. A recomputação acontece
// apenas após invalidação (escrita no razão), não a cada leitura
type Service struct {
	entryRepo  repository.DailyEntryRepository
	metricRepo repository.MetricDefinitionRepository

	mu    sync.RWMutex
	cache map[domain.RollupKey]*domain.MonthlyRollup
}

// NewService cria uma nova instância do serviço de agregação mensal
func NewService(
	entryRepo repository.DailyEntryRepository,
	metricRepo repository.MetricDefinitionRepository,
) *Service {
	return &Service{
		entryRepo:  entryRepo,
		metricRepo: metricRepo,
		cache:      make(map[domain.RollupKey]*domain.MonthlyRollup),
	}
}

// ComputeMonthlyRollup agrega os lançamentos do indicador dentro do mês:
// soma dos valores realizados, dias registrados e dias com meta diária
// atingida. Um indicador excluído produz o resultado conservador
// "não classificado" em vez de erro, para que painéis degradem sem quebrar
func (s *Service) ComputeMonthlyRollup(metricID string, year int, month time.Month) (*domain.MonthlyRollup, error) {
	key := domain.RollupKey{MetricID: metricID, Year: year, Month: month}

	s.mu.RLock()
	if cached, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	computed, err := s.compute(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = computed
	s.mu.Unlock()

	return computed, nil
}

// ComputeAll deriva a visão mensal de cada indicador do responsável.
// Lançamentos órfãos de indicadores excluídos ficam naturalmente de fora,
// já que a expansão parte das definições vigentes
func (s *Service) ComputeAll(ownerID string, year int, month time.Month) (map[string]*domain.MonthlyRollup, error) {
	definitions, err := s.metricRepo.ListByOwner(ownerID, "")
	if err != nil {
		return nil, err
	}

	rollups := make(map[string]*domain.MonthlyRollup, len(definitions))
	for _, definition := range definitions {
		monthly, err := s.ComputeMonthlyRollup(definition.ID, year, month)
		if err != nil {
			return nil, err
		}
		rollups[definition.ID] = monthly
	}

	return rollups, nil
}

// Invalidate descarta a visão mensal em cache do indicador afetado. É
// chamado pelo razão após cada escrita bem-sucedida
func (s *Service) Invalidate(key domain.RollupKey) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"metric_id": key.MetricID,
		"year":      key.Year,
		"month":     int(key.Month),
	}).Debug("Visão mensal invalidada")
}

func (s *Service) compute(key domain.RollupKey) (*domain.MonthlyRollup, error) {
	firstDay, lastDay := utils.MonthBounds(key.Year, key.Month)

	entries, err := s.entryRepo.GetByMetricAndRange(key.MetricID, firstDay, lastDay)
	if err != nil {
		return nil, err
	}

	monthly := &domain.MonthlyRollup{
		MetricID: key.MetricID,
		Year:     key.Year,
		Month:    key.Month,
	}

	for _, entry := range entries {
		monthly.TotalActual += entry.ActualValue
		monthly.DaysRecorded++
		if entry.Achieved {
			monthly.DaysAchieved++
		}
	}

	// O total exposto segue a precisão de duas casas das colunas
	// NUMERIC(14,2) onde os valores realizados são gravados
	monthly.TotalActual = utils.RoundWithTwoDecimalPlace(monthly.TotalActual)

	definition, err := s.metricRepo.GetByID(key.MetricID)
	if err != nil {
		return nil, err
	}

	if definition == nil {
		monthly.Achievement = domain.AchievementUnclassified
		return monthly, nil
	}

	monthly.Achievement = domain.Classify(monthly.TotalActual, definition.Tiers())
	monthly.ProgressPercent = domain.ProgressPercentage(monthly.TotalActual, definition.StandardTarget)

	return monthly, nil
}
