package ledger

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

// RollupInvalidator é notificado após cada escrita no razão para descartar
// a visão mensal derivada do indicador afetado
type RollupInvalidator interface {
	Invalidate(key domain.RollupKey)
}

type LedgerService interface {
	UpsertEntry(metricID, ownerID string, date time.Time, actualValue float64, notes string) (*domain.DailyEntry, error)
	GetEntriesInRange(ownerID string, metricIDs []string, startDate, endDate time.Time) ([]*domain.DailyEntry, error)
}

type Service struct {
	entryRepo   repository.DailyEntryRepository
	metricRepo  repository.MetricDefinitionRepository
	invalidator RollupInvalidator
}

// NewService cria uma nova instância do serviço do razão de lançamentos
func NewService(
	entryRepo repository.DailyEntryRepository,
	metricRepo repository.MetricDefinitionRepository,
) *Service {
	return &Service{
		entryRepo:  entryRepo,
		metricRepo: metricRepo,
	}
}

// WithInvalidator habilita a notificação de invalidação de visões mensais
func (s *Service) WithInvalidator(invalidator RollupInvalidator) *Service {
	s.invalidator = invalidator
	return s
}

// UpsertEntry grava o valor realizado de um dia pela chave natural
// (indicador, dia), substituindo qualquer lançamento anterior. O dia é
// julgado contra a meta mínima mensal rateada por TODOS os dias do
// calendário do mês, inclusive fins de semana. Repetir a chamada com os
// mesmos argumentos deixa o razão no mesmo estado observável
func (s *Service) UpsertEntry(metricID, ownerID string, date time.Time, actualValue float64, notes string) (*domain.DailyEntry, error) {
	if actualValue < 0 {
		return nil, &LedgerError{Err: ErrNegativeValue, MetricID: metricID}
	}
	if ownerID == "" {
		return nil, &LedgerError{Err: ErrOwnerRequired, MetricID: metricID}
	}

	if date.IsZero() {
		date = utils.Today()
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	definition, err := s.metricRepo.GetByID(metricID)
	if err != nil {
		return nil, err
	}
	if definition == nil {
		return nil, &LedgerError{Err: ErrMetricNotFound, MetricID: metricID}
	}

	proRatedMinimum := definition.MinimumTarget / float64(utils.DaysInMonth(date))

	entry := &domain.DailyEntry{
		MetricID:    metricID,
		OwnerID:     ownerID,
		Date:        date,
		ActualValue: actualValue,
		Achieved:    actualValue >= proRatedMinimum,
		Notes:       notes,
	}

	if err := s.entryRepo.Upsert(entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"metric_id": metricID,
			"date":      date.Format(time.DateOnly),
		}).Error("Erro ao gravar lançamento diário")
		return nil, err
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(domain.RollupKey{
			MetricID: metricID,
			Year:     date.Year(),
			Month:    date.Month(),
		})
	}

	return entry, nil
}

// GetEntriesInRange retorna os lançamentos do responsável cujo dia está em
// [startDate, endDate], restritos ao conjunto de indicadores quando
// informado
func (s *Service) GetEntriesInRange(ownerID string, metricIDs []string, startDate, endDate time.Time) ([]*domain.DailyEntry, error) {
	if ownerID == "" {
		return nil, &LedgerError{Err: ErrOwnerRequired}
	}
	if startDate.After(endDate) {
		return nil, &LedgerError{Err: ErrInvalidDateRange}
	}

	return s.entryRepo.GetByOwnerAndRange(ownerID, metricIDs, startDate, endDate)
}
