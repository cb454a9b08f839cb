package reconciling

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/rollup"
)

type Reconciler interface {
	SyncRollupToDefinition(ctx context.Context, ownerID string, year int, month time.Month) (*domain.SyncResult, error)
}

// Service é a ponte entre a visão mensal derivada e o valor consolidado
// materializado que os painéis leem nas definições dos indicadores
type Service struct {
	rollupService rollup.RollupService
	metricRepo    repository.MetricDefinitionRepository
}

// NewService cria uma nova instância do serviço de reconciliação
func NewService(
	rollupService rollup.RollupService,
	metricRepo repository.MetricDefinitionRepository,
) Reconciler {
	return &Service{
		rollupService: rollupService,
		metricRepo:    metricRepo,
	}
}

// SyncRollupToDefinition computa os agregados do mês e grava o total
// realizado de cada indicador no campo current_value, com carimbo de
// horário. A escrita é um único lote transacional: um registro inválido
// falha a sincronização inteira, sem commit parcial. A resolução de
// conflito é last-write-wins pela chave do indicador; repetir a chamada é
// seguro porque a operação é idempotente pela chave natural
func (s *Service) SyncRollupToDefinition(ctx context.Context, ownerID string, year int, month time.Month) (*domain.SyncResult, error) {
	rollups, err := s.rollupService.ComputeAll(ownerID, year, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao computar agregados mensais: %w", err)
	}

	syncedAt := time.Now()
	updates := make([]*domain.CurrentValueUpdate, 0, len(rollups))
	for metricID, monthly := range rollups {
		updates = append(updates, &domain.CurrentValueUpdate{
			MetricID:     metricID,
			CurrentValue: monthly.TotalActual,
			UpdatedAt:    syncedAt,
		})
	}

	if len(updates) > 0 {
		if err := s.metricRepo.UpdateCurrentValues(ctx, updates); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"owner_id": ownerID,
				"year":     year,
				"month":    int(month),
			}).Error("Erro ao gravar lote de valores consolidados")
			return nil, fmt.Errorf("erro ao gravar valores consolidados: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"year":     year,
		"month":    int(month),
		"metrics":  len(updates),
	}).Info("Reconciliação de valores consolidados concluída")

	return &domain.SyncResult{
		OwnerID:       ownerID,
		Year:          year,
		Month:         month,
		MetricsSynced: len(updates),
		SyncedAt:      syncedAt,
	}, nil
}
